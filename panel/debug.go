//go:build js
// +build js

package panel

import (
	"fmt"

	"github.com/gopherjs/gopherjs/js"
)

// EnableDebug gates Debug, Debugf and DebugWarn. New sets it from Config.Debug.
var EnableDebug = true

// Debug logs a message to the browser console if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		js.Global.Get("console").Call("log", args...)
	}
}

// Debugf logs a formatted message to the browser console if debug mode is enabled.
func Debugf(format string, args ...interface{}) {
	if EnableDebug {
		js.Global.Get("console").Call("log", fmt.Sprintf(format, args...))
	}
}

// DebugWarn logs a warning to the browser console if debug mode is enabled.
func DebugWarn(args ...interface{}) {
	if EnableDebug {
		js.Global.Get("console").Call("warn", args...)
	}
}

// DebugError logs an error to the browser console. Unlike the other
// helpers it ignores EnableDebug, so handler failures are never hidden.
func DebugError(args ...interface{}) {
	js.Global.Get("console").Call("error", args...)
}
