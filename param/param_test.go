package param

import "testing"

func TestNormalize(t *testing.T) {
	pan := Control{Name: "pan", Kind: Range, Min: 0, Max: 100}
	bypass := Control{Name: "bypass", Kind: Toggle}

	tests := []struct {
		name     string
		control  Control
		raw      float64
		expected float64
	}{
		{"pan zero", pan, 0, 0},
		{"pan quarter", pan, 25, 0.25},
		{"pan center", pan, 50, 0.5},
		{"pan full", pan, 100, 1},
		{"bypass on", bypass, 1, 1},
		{"bypass off", bypass, 0, 0},
		{"toggle non-zero", bypass, 42, 1},
		{"offset range", Control{Kind: Range, Min: -50, Max: 50}, 0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.control, tt.raw); got != tt.expected {
				t.Errorf("Normalize(%v) = %v, expected %v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestDenormalize(t *testing.T) {
	pan := Control{Name: "pan", Kind: Range, Min: 0, Max: 100}
	bypass := Control{Name: "bypass", Kind: Toggle}

	tests := []struct {
		name       string
		control    Control
		normalized float64
		expected   float64
	}{
		{"pan center", pan, 0.5, 50},
		{"pan full", pan, 1, 100},
		{"bypass below half", bypass, 0.49, 0},
		{"bypass at half", bypass, 0.5, 1},
		{"bypass on", bypass, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Denormalize(tt.control, tt.normalized); got != tt.expected {
				t.Errorf("Denormalize(%v) = %v, expected %v", tt.normalized, got, tt.expected)
			}
		})
	}
}

func TestControlLabel(t *testing.T) {
	if got := (Control{Name: "pan", Title: "Pan"}).Label(); got != "Pan" {
		t.Errorf("Label() = %q, expected Pan", got)
	}
	if got := (Control{Name: "pan"}).Label(); got != "pan" {
		t.Errorf("Label() without title = %q, expected pan", got)
	}
}
