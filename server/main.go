//go:build !js
// +build !js

package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"net/http"
)

//go:embed index.html
var indexHTML []byte

func newMux(host *MockHost, staticDir string) *http.ServeMux {
	mux := http.NewServeMux()

	// Serve embedded index.html at root path
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "/index.html" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(indexHTML)
			return
		}
		// Compiled main.js and friends come from disk
		http.FileServer(http.Dir(staticDir)).ServeHTTP(w, r)
	})

	host.Routes(mux)

	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})
	return mux
}

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	staticDir := flag.String("static", ".", "Directory to serve static files from")
	flag.Parse()

	host := NewMockHost(
		map[int]string{100: "Bypass", 102: "Pan"},
		map[int]float64{100: 0, 102: 0.5},
	)

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Panner panel dev server starting on http://localhost%s", addr)
	log.Printf("Serving static files from: %s", *staticDir)
	log.Printf("Mock host endpoints: /api/param, /api/params, /api/events?listener=ID")

	if err := http.ListenAndServe(addr, newMux(host, *staticDir)); err != nil {
		log.Fatal(err)
	}
}
