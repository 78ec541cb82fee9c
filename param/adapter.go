package param

import "fmt"

// Host receives normalized parameter values.
type Host interface {
	SetParamNormalized(index Index, value float64) error
}

// Controls reads and writes the state of panel elements by ID.
// Implementations return ErrControlNotFound for absent elements.
type Controls interface {
	Checked(element string) (bool, error)
	Value(element string) (float64, error)
	SetChecked(element string, checked bool) error
	SetValue(element string, value float64) error
}

// Adapter forwards control changes to the host and reflects host
// notifications back into the controls. It holds no state between calls.
type Adapter struct {
	byName  map[string]Control
	byParam map[Index]Control
	order   []Control
	dom     Controls
	host    Host
	logf    func(format string, args ...interface{})
}

// NewAdapter creates an adapter for cfg. A nil logf discards log output.
func NewAdapter(cfg Config, dom Controls, host Host, logf func(format string, args ...interface{})) *Adapter {
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	a := &Adapter{
		byName:  make(map[string]Control, len(cfg.Controls)),
		byParam: make(map[Index]Control, len(cfg.Controls)),
		order:   append([]Control(nil), cfg.Controls...),
		dom:     dom,
		host:    host,
		logf:    logf,
	}
	for _, c := range cfg.Controls {
		a.byName[c.Name] = c
		a.byParam[c.Param] = c
	}
	return a
}

// OnBypassChanged forwards the bypass checkbox state: checked is 1, unchecked is 0.
func (a *Adapter) OnBypassChanged() error {
	return a.OnControlChanged(BypassControl)
}

// OnPanChanged forwards the pan slider position divided by its range.
func (a *Adapter) OnPanChanged() error {
	return a.OnControlChanged(PanControl)
}

// OnControlChanged reads the named control, normalizes it and sends it to the host.
func (a *Adapter) OnControlChanged(name string) error {
	c, ok := a.byName[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownControl, name)
	}

	switch c.Kind {
	case Toggle:
		checked, err := a.dom.Checked(c.Element)
		if err != nil {
			return err
		}
		if err := a.host.SetParamNormalized(c.Param, Normalize(c, boolToFloat(checked))); err != nil {
			return err
		}
		a.logf("%s set: %v", c.Label(), checked)
	default:
		raw, err := a.dom.Value(c.Element)
		if err != nil {
			return err
		}
		value := Normalize(c, raw)
		if err := a.host.SetParamNormalized(c.Param, value); err != nil {
			return err
		}
		a.logf("%s set: %v", c.Label(), value)
	}
	return nil
}

// Apply moves the control bound to update's parameter to the host's value.
// Updates for parameters without a control are ignored; values outside
// [0, 1] return ErrInvalidUpdate and leave the control untouched.
func (a *Adapter) Apply(update ParameterUpdate) error {
	if err := update.Validate(); err != nil {
		return err
	}
	c, ok := a.byParam[update.Info.ID]
	if !ok {
		a.logf("Ignoring update for parameter %d", update.Info.ID)
		return nil
	}

	switch c.Kind {
	case Toggle:
		checked := Denormalize(c, update.Normalized) == 1
		if err := a.dom.SetChecked(c.Element, checked); err != nil {
			return err
		}
		a.logf("%s synced: %v", c.Label(), checked)
	default:
		value := Denormalize(c, update.Normalized)
		if err := a.dom.SetValue(c.Element, value); err != nil {
			return err
		}
		a.logf("%s synced: %v", c.Label(), value)
	}
	return nil
}

// Params returns the bound parameter indices in config order.
func (a *Adapter) Params() []Index {
	out := make([]Index, 0, len(a.order))
	for _, c := range a.order {
		out = append(out, c.Param)
	}
	return out
}

// Controls returns the configured controls in config order.
func (a *Adapter) Controls() []Control {
	return append([]Control(nil), a.order...)
}
