// Package systems holds the per-tick simulation systems. Systems are plain
// functions over a Context; the context replaces package-level globals so
// tests can run isolated worlds side by side.
package systems

import (
	"math/rand"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/depp/intern-apocalypse-sub001/config"
	"github.com/depp/intern-apocalypse-sub001/debug"
	"github.com/depp/intern-apocalypse-sub001/level"
	"github.com/depp/intern-apocalypse-sub001/nav"
	"github.com/depp/intern-apocalypse-sub001/walk"
)

// SpaceScale converts world units to resolv space pixels. Resolv's cell
// hashing needs objects at least a cell wide, so sub-unit agent discs are
// mirrored as pixel-sized boxes.
const SpaceScale = 16.0

// Context carries everything the systems share within one simulation run.
type Context struct {
	World  donburi.World
	Config *config.Config
	Level  *level.Level
	Nav    *nav.Graph
	Walker *walk.Walker
	Space  *resolv.Space
	Rand   *rand.Rand

	// Highlights is optional; nil disables edge annotation.
	Highlights *debug.Highlights

	Tick  int64
	Stats Stats
}

// Stats counts notable events across a run.
type Stats struct {
	Attacks    int64
	WallHits   int64
	Staggers   int64
	PlayerDown int64
}

// Dt returns the fixed tick duration in seconds.
func (c *Context) Dt() float64 {
	return 1 / float64(c.Config.Sim.TickRate)
}
