package deconv

import (
	"errors"
	"strings"
	"testing"
)

func TestParseSeed(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   Seed
		wantOK bool
	}{
		{
			name:   "valid",
			text:   "H DAB,0.650,0.704,0.286,0.268,0.570,0.776,0,0,0",
			want:   NewSeed("H DAB", V(0.650, 0.704, 0.286), V(0.268, 0.570, 0.776), Vector{}),
			wantOK: true,
		},
		{
			name:   "trailing whitespace",
			text:   "Custom \t,1 ,2\t,3 ,4,5,6,7,8,9 \r\n",
			want:   NewSeed("Custom", V(1, 2, 3), V(4, 5, 6), V(7, 8, 9)),
			wantOK: true,
		},
		{
			name:   "scientific notation",
			text:   "sci,1e-3,2E0,3,0,0,0,0,0,0",
			want:   NewSeed("sci", V(0.001, 2, 3), Vector{}, Vector{}),
			wantOK: true,
		},
		{
			name:   "trailing commas",
			text:   "Custom,1,2,3,4,5,6,7,8,9,,",
			want:   NewSeed("Custom", V(1, 2, 3), V(4, 5, 6), V(7, 8, 9)),
			wantOK: true,
		},
		{name: "too few fields", text: "short,1,2,3,4,5,6"},
		{name: "too few fields with trailing comma", text: "short,1,2,3,4,5,6,7,8,"},
		{name: "trailing comma then space", text: "ws,1,2,3,4,5,6,7,8,9, "},
		{name: "too many fields", text: "long,1,2,3,4,5,6,7,8,9,10"},
		{name: "not a number", text: "bad,1,2,x,4,5,6,7,8,9"},
		{name: "empty field", text: "bad,1,2,,4,5,6,7,8,9"},
		{name: "empty", text: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSeed(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ParseSeed(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseSeed(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseSeedErrors(t *testing.T) {
	_, err := parseSeed("a,b")
	if !errors.Is(err, ErrMalformedSeed) {
		t.Errorf("parseSeed error = %v, want ErrMalformedSeed", err)
	}
}

func TestSeedSetTextMalformedLeavesReceiver(t *testing.T) {
	s := LookupPreset("H DAB")
	before := s
	if s.SetText("broken,1,2,3") {
		t.Error("SetText(malformed) = true, want false")
	}
	if s != before {
		t.Errorf("SetText(malformed) modified seed: %v, want %v", s, before)
	}

	if !s.SetText("new,1,0,0,0,1,0,0,0,1") {
		t.Fatal("SetText(valid) = false, want true")
	}
	if s.Name != "new" || s.Stains[2] != V(0, 0, 1) {
		t.Errorf("SetText(valid) = %v", s)
	}
}

func TestSeedTextRoundTrip(t *testing.T) {
	for _, name := range Presets() {
		s := LookupPreset(name)
		got, ok := ParseSeed(s.Text())
		if !ok {
			t.Errorf("%s: ParseSeed(Text()) failed for %q", name, s.Text())
			continue
		}
		if got != s {
			t.Errorf("%s: round trip = %v, want %v", name, got, s)
		}
	}
}

func TestReadSeeds(t *testing.T) {
	buf := captureLogs(t)

	input := `# custom stains
Hematoxylin only,0.65,0.704,0.286,0,0,0,0,0,0

broken line,1,2
Two,1,0,0,0,1,0,0,0,0
`
	seeds, err := ReadSeeds(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadSeeds() error = %v", err)
	}
	if len(seeds) != 2 {
		t.Fatalf("len(seeds) = %d, want 2", len(seeds))
	}
	if seeds[0].Name != "Hematoxylin only" || seeds[1].Name != "Two" {
		t.Errorf("names = %q, %q", seeds[0].Name, seeds[1].Name)
	}
	if !strings.Contains(buf.String(), "line=4") {
		t.Errorf("expected a warning for line 4, got: %s", buf.String())
	}
}
