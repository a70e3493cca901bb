package deconv

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// seedFields is the number of comma-separated fields in a stain definition:
// the name followed by nine vector components.
const seedFields = 10

// Seed is the unresolved input to Resolve: a name and up to three raw stain
// vectors. A zero vector marks a stain as unspecified; Resolve synthesizes it.
type Seed struct {
	Name   string
	Stains [3]Vector
}

// NewSeed creates a Seed from explicit stain vectors.
// Pass a zero Vector for stains that should be synthesized.
func NewSeed(name string, s1, s2, s3 Vector) Seed {
	return Seed{Name: name, Stains: [3]Vector{s1, s2, s3}}
}

// ParseSeed parses the line-oriented encoding
//
//	name,R1,G1,B1,R2,G2,B2,R3,G3,B3
//
// Trailing whitespace on each field is ignored, as are empty fields at the
// end of the line, so "name,1,2,3,4,5,6,7,8,9,," parses. The second return
// value is false when the line has the wrong number of fields or a
// component is not a number; the returned Seed is then the zero value.
func ParseSeed(text string) (Seed, bool) {
	s, err := parseSeed(text)
	if err != nil {
		return Seed{}, false
	}
	return s, true
}

func parseSeed(text string) (Seed, error) {
	fields := strings.Split(text, ",")
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	if len(fields) != seedFields {
		return Seed{}, fmt.Errorf("%w: %d fields, want %d", ErrMalformedSeed, len(fields), seedFields)
	}

	var s Seed
	s.Name = strings.TrimRightFunc(fields[0], unicode.IsSpace)
	for i := 0; i < 9; i++ {
		field := strings.TrimSpace(fields[i+1])
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Seed{}, fmt.Errorf("%w: field %d %q", ErrMalformedSeed, i+2, field)
		}
		s.Stains[i/3][i%3] = v
	}
	return s, nil
}

// SetText replaces s with the parsed form of text.
// A malformed line leaves s untouched and reports false.
func (s *Seed) SetText(text string) bool {
	parsed, ok := ParseSeed(text)
	if !ok {
		return false
	}
	*s = parsed
	return true
}

// Text returns the line-oriented encoding accepted by ParseSeed.
func (s Seed) Text() string {
	var b strings.Builder
	b.WriteString(s.Name)
	for _, v := range s.Stains {
		for _, c := range v {
			b.WriteByte(',')
			b.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		}
	}
	return b.String()
}

// String implements fmt.Stringer.
func (s Seed) String() string {
	return fmt.Sprintf("%s [%v %v %v]", s.Name, s.Stains[0], s.Stains[1], s.Stains[2])
}

// ReadSeeds reads stain definitions, one per line, from r.
// Blank lines and lines starting with '#' are skipped. Malformed lines are
// logged at Warn level and skipped. The returned error reports only read
// failures.
func ReadSeeds(r io.Reader) ([]Seed, error) {
	var seeds []Seed
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		s, err := parseSeed(text)
		if err != nil {
			Logger().Warn("deconv: skipping stain definition", "line", line, "err", err)
			continue
		}
		seeds = append(seeds, s)
	}
	if err := sc.Err(); err != nil {
		return seeds, fmt.Errorf("deconv: read stain definitions: %w", err)
	}
	return seeds, nil
}
