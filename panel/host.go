//go:build js
// +build js

package panel

import (
	"fmt"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/panner-webview/param"
)

// JSHost calls the parameter functions the plugin host installs on the window.
type JSHost struct {
	global *js.Object
}

// NewJSHost wraps the object holding the host functions (normally js.Global).
func NewJSHost(global *js.Object) JSHost {
	return JSHost{global: global}
}

func (h JSHost) has(name string) bool {
	fn := h.global.Get(name)
	return fn != nil && fn != js.Undefined
}

// SetParamNormalized forwards a value to the host's setParamNormalized.
func (h JSHost) SetParamNormalized(index param.Index, value float64) error {
	if !h.has("setParamNormalized") {
		return fmt.Errorf("%w: setParamNormalized", param.ErrHostUnavailable)
	}
	h.global.Call("setParamNormalized", int(index), value)
	return nil
}

// Subscribe asks the host to push changes of index to notifyParameterChange.
// It reports false when the host has no subscription support.
func (h JSHost) Subscribe(index param.Index) bool {
	if !h.has("subscribeParameter") {
		return false
	}
	h.global.Call("subscribeParameter", int(index))
	return true
}

// ParamNormalized requests the current value of index and passes it to fn.
// The host may answer directly or with a promise. A rejected promise is
// logged and fn is not called.
func (h JSHost) ParamNormalized(index param.Index, fn func(float64)) bool {
	if !h.has("getParamNormalized") {
		return false
	}
	res := h.global.Call("getParamNormalized", int(index))
	if res == nil || res == js.Undefined {
		return false
	}
	if then := res.Get("then"); then != nil && then != js.Undefined {
		res.Call("then", func(v *js.Object) {
			fn(v.Float())
		}, func(reason *js.Object) {
			DebugWarn("getParamNormalized rejected for parameter", int(index), reason)
		})
		return true
	}
	fn(res.Float())
	return true
}
