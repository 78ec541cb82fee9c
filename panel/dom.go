//go:build js
// +build js

package panel

import (
	"fmt"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/panner-webview/param"
)

// Document reads and writes panel controls through getElementById.
type Document struct {
	doc *js.Object
}

// NewDocument wraps a DOM document object.
func NewDocument(doc *js.Object) Document {
	return Document{doc: doc}
}

func (d Document) element(id string) (*js.Object, error) {
	if d.doc == nil || d.doc == js.Undefined {
		return nil, fmt.Errorf("%w: %s (no document)", param.ErrControlNotFound, id)
	}
	el := d.doc.Call("getElementById", id)
	if el == nil || el == js.Undefined {
		return nil, fmt.Errorf("%w: %s", param.ErrControlNotFound, id)
	}
	return el, nil
}

// Checked reports whether the checkbox is checked.
func (d Document) Checked(element string) (bool, error) {
	el, err := d.element(element)
	if err != nil {
		return false, err
	}
	return el.Get("checked").Bool(), nil
}

// Value returns the element's value as a number.
func (d Document) Value(element string) (float64, error) {
	el, err := d.element(element)
	if err != nil {
		return 0, err
	}
	return el.Get("value").Float(), nil
}

// SetChecked checks or unchecks the checkbox.
func (d Document) SetChecked(element string, checked bool) error {
	el, err := d.element(element)
	if err != nil {
		return err
	}
	el.Set("checked", checked)
	return nil
}

// SetValue sets the element's value.
func (d Document) SetValue(element string, value float64) error {
	el, err := d.element(element)
	if err != nil {
		return err
	}
	el.Set("value", value)
	return nil
}

// Listen attaches fn to an element event.
func (d Document) Listen(element, event string, fn func()) error {
	el, err := d.element(element)
	if err != nil {
		return err
	}
	el.Call("addEventListener", event, func(e *js.Object) {
		fn()
	})
	return nil
}
