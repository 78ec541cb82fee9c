// Package param maps panel controls to the host's normalized parameter protocol.
package param

// Index identifies a parameter on the host.
type Index int

// Host parameter indices.
const (
	Bypass Index = 100
	Pan    Index = 102
)

// Control names used by the default panel.
const (
	BypassControl = "bypass"
	PanControl    = "pan"
)

// Kind describes how a control's raw state is read.
type Kind string

const (
	Toggle Kind = "toggle" // checkbox, read through "checked"
	Range  Kind = "range"  // slider or number input, read through "value"
)

// Control binds a DOM element to a host parameter.
type Control struct {
	Name    string  `yaml:"name"`
	Title   string  `yaml:"title"`
	Element string  `yaml:"element"`
	Param   Index   `yaml:"param"`
	Kind    Kind    `yaml:"kind"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
}

// Label returns the title used in log lines, falling back to the name.
func (c Control) Label() string {
	if c.Title != "" {
		return c.Title
	}
	return c.Name
}

// Normalize rescales a raw control value to the unit interval.
// Toggles map any non-zero value to 1 and zero to 0. Ranges map
// [Min, Max] linearly onto [0, 1]; no clamping is applied.
func Normalize(c Control, raw float64) float64 {
	if c.Kind == Toggle {
		if raw != 0 {
			return 1
		}
		return 0
	}
	return (raw - c.Min) / (c.Max - c.Min)
}

// Denormalize maps a normalized value back to the control's native range.
func Denormalize(c Control, normalized float64) float64 {
	if c.Kind == Toggle {
		if normalized >= 0.5 {
			return 1
		}
		return 0
	}
	return c.Min + normalized*(c.Max-c.Min)
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
