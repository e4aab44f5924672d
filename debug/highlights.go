// Package debug holds the read-only debugging surface: a side table of
// per-edge highlight colors written by the simulation systems, and a
// websocket overlay that streams level geometry and live agent state to a
// viewer. The core packages never depend on it.
package debug

import (
	"sync"

	"github.com/depp/intern-apocalypse-sub001/level"
)

// Highlights annotates level edges by arena id without touching the level
// itself. Safe for concurrent use.
type Highlights struct {
	mu     sync.Mutex
	colors map[level.EdgeID]string
}

func NewHighlights() *Highlights {
	return &Highlights{colors: make(map[level.EdgeID]string)}
}

// Set colors an edge; an empty color removes the annotation.
func (h *Highlights) Set(id level.EdgeID, color string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if color == "" {
		delete(h.colors, id)
		return
	}
	h.colors[id] = color
}

// Clear removes every annotation.
func (h *Highlights) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	clear(h.colors)
}

// Snapshot returns a copy of the current annotations.
func (h *Highlights) Snapshot() map[level.EdgeID]string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make(map[level.EdgeID]string, len(h.colors))
	for id, c := range h.colors {
		out[id] = c
	}
	return out
}
