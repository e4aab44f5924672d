package debug

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/depp/intern-apocalypse-sub001/level"
)

// Frame is one tick of live state pushed to overlay viewers.
type Frame struct {
	Tick       int64                   `json:"tick"`
	Agents     []AgentFrame            `json:"agents"`
	Highlights map[level.EdgeID]string `json:"highlights,omitempty"`
}

type AgentFrame struct {
	Kind   string  `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Health int     `json:"health"`
}

type edgeGeometry struct {
	ID       level.EdgeID `json:"id"`
	Cell     int32        `json:"cell"`
	X0       float64      `json:"x0"`
	Y0       float64      `json:"y0"`
	X1       float64      `json:"x1"`
	Y1       float64      `json:"y1"`
	Passable bool         `json:"passable"`
}

type cellGeometry struct {
	Index    int32   `json:"index"`
	Walkable bool    `json:"walkable"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

type geometry struct {
	Size  float64        `json:"size"`
	Cells []cellGeometry `json:"cells"`
	Edges []edgeGeometry `json:"edges"`
}

// Overlay serves the level geometry once per connection and then streams
// frames. Each viewer gets a size-1 buffered channel; stale frames are
// dropped so a slow viewer never backs up the simulation.
type Overlay struct {
	level *level.Level
	high  *Highlights

	mu      sync.Mutex
	viewers map[chan Frame]struct{}
	server  *http.Server
}

func NewOverlay(l *level.Level, h *Highlights) *Overlay {
	return &Overlay{
		level:   l,
		high:    h,
		viewers: make(map[chan Frame]struct{}),
	}
}

// Start serves the overlay endpoint on addr in a background goroutine.
func (o *Overlay) Start(addr string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/overlay", o.handleViewer)
	o.server = &http.Server{Addr: addr, Handler: mux}
	go func() {
		log.Printf("[debug] overlay listening on %s", addr)
		if err := o.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[debug] overlay server: %v", err)
		}
	}()
}

// Close stops the server and disconnects all viewers.
func (o *Overlay) Close() {
	if o.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = o.server.Shutdown(ctx)
}

// Publish fans a frame out to every viewer, latest wins.
func (o *Overlay) Publish(f Frame) {
	f.Highlights = o.high.Snapshot()
	o.mu.Lock()
	defer o.mu.Unlock()
	for ch := range o.viewers {
		select { // drain stale, push latest
		case <-ch:
		default:
		}
		ch <- f
	}
}

func (o *Overlay) handleViewer(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // local debugging tool
	})
	if err != nil {
		log.Printf("[debug] overlay accept: %v", err)
		return
	}
	defer c.Close(websocket.StatusNormalClosure, "")

	ctx := r.Context()
	if err := wsjson.Write(ctx, c, o.geometry()); err != nil {
		log.Printf("[debug] overlay geometry send: %v", err)
		return
	}

	ch := make(chan Frame, 1)
	o.mu.Lock()
	o.viewers[ch] = struct{}{}
	o.mu.Unlock()
	defer func() {
		o.mu.Lock()
		delete(o.viewers, ch)
		o.mu.Unlock()
	}()

	log.Printf("[debug] overlay viewer connected from %s", r.RemoteAddr)
	for {
		select {
		case <-ctx.Done():
			return
		case f := <-ch:
			if err := wsjson.Write(ctx, c, f); err != nil {
				return
			}
		}
	}
}

func (o *Overlay) geometry() geometry {
	g := geometry{Size: o.level.Size}
	for i := 0; i < o.level.NumCells(); i++ {
		c := o.level.Cell(int32(i))
		g.Cells = append(g.Cells, cellGeometry{
			Index:    c.Index,
			Walkable: c.Walkable,
			X:        c.Centroid.X,
			Y:        c.Centroid.Y,
		})
	}
	o.level.EachEdge(func(id level.EdgeID, e *level.Edge) {
		if e.Cell < 0 {
			return
		}
		g.Edges = append(g.Edges, edgeGeometry{
			ID:       id,
			Cell:     e.Cell,
			X0:       e.Vertex0.X,
			Y0:       e.Vertex0.Y,
			X1:       e.Vertex1.X,
			Y1:       e.Vertex1.Y,
			Passable: e.Passable,
		})
	})
	return g
}
