//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/panner-webview/panel"
	"github.com/simukka/panner-webview/param"
)

func main() {
	cfg := param.DefaultConfig()

	// Listeners and the initial sync need the controls in the DOM.
	p := panel.New(js.Global, cfg)
	doc := js.Global.Get("document")
	if doc.Get("readyState").String() == "loading" {
		doc.Call("addEventListener", "DOMContentLoaded", func() {
			p.Install()
		})
	} else {
		p.Install()
	}

	panel.Debug("Panner panel ready")

	select {}
}
