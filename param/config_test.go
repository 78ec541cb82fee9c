package param

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	want := Config{
		Debug:  true,
		Listen: false,
		Controls: []Control{
			{Name: "bypass", Title: "Bypass", Element: "bypass", Param: Bypass, Kind: Toggle},
			{Name: "pan", Title: "Pan", Element: "pan", Param: Pan, Kind: Range, Min: 0, Max: 100},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("DefaultConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		message string
	}{
		{"empty", "  \n", "empty document"},
		{"malformed", "controls: [", ""},
		{"missing name", `
controls:
  - element: pan
    kind: range
    max: 1
`, "has no name"},
		{"missing element", `
controls:
  - name: pan
    kind: range
    max: 1
`, "has no element"},
		{"duplicate name", `
controls:
  - {name: pan, element: a, param: 1, kind: toggle}
  - {name: pan, element: b, param: 2, kind: toggle}
`, "duplicate control"},
		{"shared parameter", `
controls:
  - {name: a, element: a, param: 5, kind: toggle}
  - {name: b, element: b, param: 5, kind: toggle}
`, "share parameter 5"},
		{"empty range", `
controls:
  - {name: pan, element: pan, param: 102, kind: range, min: 10, max: 10}
`, "is empty"},
		{"unknown kind", `
controls:
  - {name: pan, element: pan, param: 102, kind: knob}
`, "unknown kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("LoadConfig() error = %v, expected ErrInvalidConfig", err)
			}
			if tt.message != "" && !strings.Contains(err.Error(), tt.message) {
				t.Errorf("LoadConfig() error = %q, expected it to contain %q", err, tt.message)
			}
		})
	}
}

func TestLoadConfig_Custom(t *testing.T) {
	cfg, err := LoadConfig([]byte(`
debug: false
controls:
  - name: width
    element: width-slider
    param: 104
    kind: range
    min: -100
    max: 100
`))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Debug || cfg.Listen {
		t.Errorf("Expected debug and listen to be false, got %+v", cfg)
	}
	want := []Control{{Name: "width", Element: "width-slider", Param: 104, Kind: Range, Min: -100, Max: 100}}
	if diff := cmp.Diff(want, cfg.Controls); diff != "" {
		t.Errorf("Controls mismatch (-want +got):\n%s", diff)
	}
}
