package deconv

import (
	"slices"
	"testing"
)

func TestPresetsOrder(t *testing.T) {
	want := []string{
		"H&E", "H&E 2", "H DAB", "Feulgen Light Green", "Giemsa",
		"FastRed FastBlue DAB", "Methyl Green DAB", "H&E DAB", "H AEC",
		"Azan-Mallory", "Masson Trichrome", "Alcian blue & H", "H PAS",
		"RGB", "CMY",
	}
	if got := Presets(); !slices.Equal(got, want) {
		t.Errorf("Presets() = %v, want %v", got, want)
	}
}

func TestPresetsReturnsCopy(t *testing.T) {
	names := Presets()
	names[0] = "mutated"
	if Presets()[0] != "H&E" {
		t.Error("modifying Presets() result changed the catalog")
	}
}

func TestPresetByName(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"H DAB", "H DAB", true},
		{"h dab", "H DAB", true},
		{"MASSON TRICHROME", "Masson Trichrome", true},
		{"alcian BLUE & h", "Alcian blue & H", true},
		{"H DAB ", "", false},
		{"unknown", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := PresetByName(tt.name)
			if ok != tt.wantOK || p.Name != tt.want {
				t.Errorf("PresetByName(%q) = (%q, %v), want (%q, %v)", tt.name, p.Name, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLookupPresetFallback(t *testing.T) {
	got := LookupPreset("no such stain")
	want := LookupPreset(DefaultPreset)
	if got != want {
		t.Errorf("LookupPreset(unknown) = %v, want %v", got, want)
	}
	if got.Stains[0] != V(0.644211, 0.716556, 0.266844) {
		t.Errorf("default stain1 = %v", got.Stains[0])
	}
}

func TestLookupPresetValues(t *testing.T) {
	tests := []struct {
		name string
		want [3]Vector
	}{
		{"H DAB", [3]Vector{{0.650, 0.704, 0.286}, {0.268, 0.570, 0.776}, {}}},
		{"H&E DAB", [3]Vector{{0.650, 0.704, 0.286}, {0.072, 0.990, 0.105}, {0.268, 0.570, 0.776}}},
		{"Giemsa", [3]Vector{{0.834750233, 0.513556283, 0.196330403}, {0.092789, 0.954111, 0.283111}, {}}},
		{"CMY", [3]Vector{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := LookupPreset(tt.name)
			if s.Name != tt.name || s.Stains != tt.want {
				t.Errorf("LookupPreset(%q) = %v, want %v", tt.name, s, tt.want)
			}
		})
	}
}
