//go:build js
// +build js

// Package panel binds the parameter adapter to the plugin editor's web page.
package panel

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/panner-webview/param"
)

// Panel owns the browser side of the control panel.
type Panel struct {
	cfg     param.Config
	global  *js.Object
	doc     Document
	host    JSHost
	adapter *param.Adapter
}

// New creates a panel reading controls from global.document and calling
// host functions on global.
func New(global *js.Object, cfg param.Config) *Panel {
	EnableDebug = cfg.Debug
	p := &Panel{
		cfg:    cfg,
		global: global,
		doc:    NewDocument(global.Get("document")),
		host:   NewJSHost(global),
	}
	p.adapter = param.NewAdapter(cfg, p.doc, p.host, Debugf)
	return p
}

// Adapter returns the underlying parameter adapter.
func (p *Panel) Adapter() *param.Adapter {
	return p.adapter
}

// Install wires control changes to the host and pulls the host's current
// values into the controls. With Listen set, DOM listeners are attached;
// otherwise bypassClick and panChange are exposed for inline handlers.
// Only one of the two is installed so an event reaches the host once.
func (p *Panel) Install() {
	if p.cfg.Listen {
		p.listen()
	} else {
		p.global.Set("bypassClick", func() {
			p.must(p.adapter.OnBypassChanged())
		})
		p.global.Set("panChange", func() {
			p.must(p.adapter.OnPanChanged())
		})
	}
	p.global.Set("notifyParameterChange", func(obj *js.Object) {
		p.notify(obj)
	})
	p.sync()
}

func (p *Panel) listen() {
	for _, c := range p.adapter.Controls() {
		name := c.Name
		event := "input"
		if c.Kind == param.Toggle {
			event = "change"
		}
		err := p.doc.Listen(c.Element, event, func() {
			p.must(p.adapter.OnControlChanged(name))
		})
		if err != nil {
			DebugWarn("Cannot attach "+event+" listener:", err.Error())
		}
	}
}

func (p *Panel) sync() {
	for _, idx := range p.adapter.Params() {
		idx := idx
		if !p.host.Subscribe(idx) {
			Debugf("Host has no subscribeParameter, parameter %d not followed", idx)
		}
		p.host.ParamNormalized(idx, func(v float64) {
			err := p.adapter.Apply(param.ParameterUpdate{
				Normalized: v,
				Info:       param.ParameterInfo{ID: idx},
			})
			if err != nil {
				DebugWarn("Initial sync failed:", err.Error())
			}
		})
	}
}

// notify handles a host-pushed parameter object. Bad payloads are logged,
// never thrown back into the host.
func (p *Panel) notify(obj *js.Object) {
	data := js.Global.Get("JSON").Call("stringify", obj).String()
	update, err := param.DecodeUpdate([]byte(data))
	if err != nil {
		DebugWarn(err.Error())
		return
	}
	if err := p.adapter.Apply(update); err != nil {
		DebugWarn(err.Error())
	}
}

// must surfaces handler errors as uncaught JS exceptions.
func (p *Panel) must(err error) {
	if err != nil {
		DebugError(err.Error())
		panic(err)
	}
}
