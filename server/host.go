//go:build !js
// +build !js

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"
)

// ParamInfo mirrors the "info" block the plugin host serializes.
type ParamInfo struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// ParamChange is pushed to listening pages after every set.
type ParamChange struct {
	Normalized float64   `json:"normalized"`
	Info       ParamInfo `json:"info"`
}

// SetRequest is the body of POST /api/param.
type SetRequest struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

// Listener is a connected page receiving parameter changes over SSE.
type Listener struct {
	ID       string
	Messages chan []byte
}

// MockHost stands in for the plugin host during development: it stores
// normalized values by index and fans changes out to every open page.
type MockHost struct {
	titles    map[int]string
	values    map[int]float64
	listeners map[string]*Listener
	mu        sync.RWMutex
}

// NewMockHost creates a host with the given parameter titles and defaults.
func NewMockHost(titles map[int]string, defaults map[int]float64) *MockHost {
	h := &MockHost{
		titles:    titles,
		values:    make(map[int]float64, len(defaults)),
		listeners: make(map[string]*Listener),
	}
	for idx, v := range defaults {
		h.values[idx] = v
	}
	return h
}

// SetParamNormalized stores value and broadcasts the change to every
// listener except the sender.
func (h *MockHost) SetParamNormalized(senderID string, index int, value float64) error {
	if math.IsNaN(value) || value < 0 || value > 1 {
		return fmt.Errorf("value %v for parameter %d outside [0, 1]", value, index)
	}

	h.mu.Lock()
	if _, ok := h.titles[index]; !ok {
		h.mu.Unlock()
		return fmt.Errorf("unknown parameter %d", index)
	}
	h.values[index] = value
	h.mu.Unlock()

	log.Printf("setParamNormalized(%d, %v) from %s", index, value, senderID)

	msg, err := json.Marshal(ParamChange{
		Normalized: value,
		Info:       ParamInfo{ID: index, Title: h.titles[index]},
	})
	if err != nil {
		log.Printf("Failed to encode change for parameter %d: %v", index, err)
		return nil
	}
	h.broadcast(senderID, msg)
	return nil
}

// ParamNormalized returns the stored value for index.
func (h *MockHost) ParamNormalized(index int) (float64, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	v, ok := h.values[index]
	return v, ok
}

// Snapshot returns every stored parameter sorted by index.
func (h *MockHost) Snapshot() []ParamChange {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]ParamChange, 0, len(h.values))
	for idx, v := range h.values {
		out = append(out, ParamChange{Normalized: v, Info: ParamInfo{ID: idx, Title: h.titles[idx]}})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Info.ID < out[j].Info.ID
	})
	return out
}

// AddListener registers a page, replacing any listener with the same ID.
func (h *MockHost) AddListener(id string) *Listener {
	h.mu.Lock()
	defer h.mu.Unlock()

	if existing, ok := h.listeners[id]; ok {
		close(existing.Messages)
	}
	l := &Listener{ID: id, Messages: make(chan []byte, 100)}
	h.listeners[id] = l
	log.Printf("Listener %s connected", id)
	return l
}

// RemoveListener unregisters l if it is still the current listener for its ID.
func (h *MockHost) RemoveListener(l *Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if current, ok := h.listeners[l.ID]; ok && current == l {
		close(l.Messages)
		delete(h.listeners, l.ID)
		log.Printf("Listener %s disconnected", l.ID)
	}
}

func (h *MockHost) broadcast(senderID string, msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, l := range h.listeners {
		if id == senderID {
			continue
		}
		select {
		case l.Messages <- msg:
		default:
			log.Printf("Message buffer full for listener %s", id)
		}
	}
}

// HTTP handlers

func (h *MockHost) handleParam(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.Method {
	case http.MethodGet:
		idx, err := strconv.Atoi(r.URL.Query().Get("index"))
		if err != nil {
			http.Error(w, "index query parameter required", http.StatusBadRequest)
			return
		}
		v, ok := h.ParamNormalized(idx)
		if !ok {
			http.Error(w, "unknown parameter", http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"index": idx, "value": v})
	case http.MethodPost:
		var req SetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if err := h.SetParamNormalized(r.URL.Query().Get("listener"), req.Index, req.Value); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"status":"ok"}`))
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *MockHost) handleParams(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"params": h.Snapshot(),
	})
}

// handleEvents streams parameter changes to a page via Server-Sent Events.
func (h *MockHost) handleEvents(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("listener")
	if id == "" {
		http.Error(w, "listener query parameter required", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	l := h.AddListener(id)
	defer h.RemoveListener(l)

	fmt.Fprintf(w, ": connected %d\n\n", time.Now().Unix())
	flusher.Flush()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-l.Messages:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

// Routes registers the mock host endpoints on mux.
func (h *MockHost) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/api/param", h.handleParam)
	mux.HandleFunc("/api/params", h.handleParams)
	mux.HandleFunc("/api/events", h.handleEvents)
}
