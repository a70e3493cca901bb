package deconv

import (
	"golang.org/x/text/cases"
)

// DefaultPreset is the catalog entry used when a lookup name is unknown.
const DefaultPreset = "H&E"

// Shared reference vectors.
var (
	vecZero    = Vector{}
	vecDAB     = Vector{0.268, 0.570, 0.776}
	vecHaem    = Vector{0.650, 0.704, 0.286}
	vecGLEosin = Vector{0.092789, 0.954111, 0.283111}
	vecGLHaem  = Vector{0.644211, 0.716556, 0.266844}
)

// Preset is a named reference stain triple from the built-in catalog.
type Preset struct {
	Name   string
	Stains [3]Vector
}

// Seed returns the preset as an unresolved Seed.
func (p Preset) Seed() Seed {
	return Seed{Name: p.Name, Stains: p.Stains}
}

// catalog is ordered for presentation.
var catalog = []Preset{
	{"H&E", [3]Vector{vecGLHaem, vecGLEosin, vecZero}},
	{"H&E 2", [3]Vector{{0.49015734, 0.76897085, 0.41040173}, {0.04615336, 0.8420684, 0.5373925}, vecZero}},
	{"H DAB", [3]Vector{vecHaem, vecDAB, vecZero}},
	{"Feulgen Light Green", [3]Vector{{0.46420921, 0.83008335, 0.30827187}, {0.94705542, 0.25373821, 0.19650764}, vecZero}},
	{"Giemsa", [3]Vector{{0.834750233, 0.513556283, 0.196330403}, vecGLEosin, vecZero}},
	{"FastRed FastBlue DAB", [3]Vector{{0.21393921, 0.85112669, 0.47794022}, {0.74890292, 0.60624161, 0.26731082}, vecDAB}},
	{"Methyl Green DAB", [3]Vector{{0.98003, 0.144316, 0.133146}, vecDAB, vecZero}},
	{"H&E DAB", [3]Vector{vecHaem, {0.072, 0.990, 0.105}, vecDAB}},
	{"H AEC", [3]Vector{vecHaem, {0.2743, 0.6796, 0.6803}, vecZero}},
	{"Azan-Mallory", [3]Vector{{0.853033, 0.508733, 0.112656}, {0.09289875, 0.8662008, 0.49098468}, {0.10732849, 0.36765403, 0.9237484}}},
	{"Masson Trichrome", [3]Vector{{0.7995107, 0.5913521, 0.10528667}, {0.09997159, 0.73738605, 0.6680326}, vecZero}},
	{"Alcian blue & H", [3]Vector{{0.874622, 0.457711, 0.158256}, {0.552556, 0.7544, 0.353744}, vecZero}},
	{"H PAS", [3]Vector{vecGLHaem, {0.175411, 0.972178, 0.154589}, vecZero}},
	{"RGB", [3]Vector{{0.0, 1.0, 1.0}, {1.0, 0.0, 1.0}, {1.0, 1.0, 0.0}}},
	{"CMY", [3]Vector{{1.0, 0.0, 0.0}, {0.0, 1.0, 0.0}, {0.0, 0.0, 1.0}}},
}

// index maps case-folded names to catalog positions.
var index = func() map[string]int {
	m := make(map[string]int, len(catalog))
	for i, p := range catalog {
		m[foldName(p.Name)] = i
	}
	return m
}()

// foldName returns the caseless form of name used for lookups.
// A new Caser is created per call because Casers are not safe for
// concurrent use.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// Presets returns the catalog names in presentation order.
// The returned slice is a fresh copy.
func Presets() []string {
	names := make([]string, len(catalog))
	for i, p := range catalog {
		names[i] = p.Name
	}
	return names
}

// PresetByName finds a catalog entry by case-insensitive name.
func PresetByName(name string) (Preset, bool) {
	i, ok := index[foldName(name)]
	if !ok {
		return Preset{}, false
	}
	return catalog[i], true
}

// LookupPreset returns the seed for the named preset. Unknown names fall
// back to DefaultPreset; use PresetByName to detect that case.
func LookupPreset(name string) Seed {
	if p, ok := PresetByName(name); ok {
		return p.Seed()
	}
	Logger().Debug("deconv: unknown preset, using default", "name", name, "default", DefaultPreset)
	p, _ := PresetByName(DefaultPreset)
	return p.Seed()
}
