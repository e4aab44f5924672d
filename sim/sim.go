// Package sim wires the level, navigation, and collision packages into a
// headless fixed-rate simulation: a waypoint-walking player chased by
// monsters across a procedurally carved arena.
package sim

import (
	"log"
	"math/rand"

	"github.com/yohamta/donburi"

	"github.com/depp/intern-apocalypse-sub001/components"
	"github.com/depp/intern-apocalypse-sub001/config"
	"github.com/depp/intern-apocalypse-sub001/debug"
	"github.com/depp/intern-apocalypse-sub001/geom"
	"github.com/depp/intern-apocalypse-sub001/level"
	"github.com/depp/intern-apocalypse-sub001/nav"
	"github.com/depp/intern-apocalypse-sub001/systems"
	"github.com/depp/intern-apocalypse-sub001/systems/factory"
	"github.com/depp/intern-apocalypse-sub001/walk"
)

// Sim is one simulation run.
type Sim struct {
	Config *config.Config
	Ctx    *systems.Context

	player  *donburi.Entry
	overlay *debug.Overlay
}

// New builds the world for a run: level generation, blocked cells, the
// navigation graph, the ECS population, and optionally the debug overlay.
// The same config always produces the same world.
func New(cfg *config.Config) *Sim {
	rng := rand.New(rand.NewSource(cfg.Sim.Seed))
	lvl := buildLevel(cfg.Level, rng)
	blockCells(lvl, cfg.Level.BlockedFraction, rng)
	lvl.UpdateProperties()

	ctx := &systems.Context{
		World:  donburi.NewWorld(),
		Config: cfg,
		Level:  lvl,
		Nav:    nav.New(lvl),
		Walker: walk.NewWalker(lvl),
		Rand:   rng,
	}
	s := &Sim{Config: cfg, Ctx: ctx}

	if cfg.Debug.OverlayAddr != "" {
		ctx.Highlights = debug.NewHighlights()
		s.overlay = debug.NewOverlay(lvl, ctx.Highlights)
		s.overlay.Start(cfg.Debug.OverlayAddr)
	}

	factory.CreateSpace(ctx)

	spawns := walkableCentroids(lvl)
	if len(spawns) == 0 {
		panic("sim: no walkable cells to spawn in")
	}
	rng.Shuffle(len(spawns), func(i, j int) { spawns[i], spawns[j] = spawns[j], spawns[i] })

	playerPos := spawns[0]
	ctx.Nav.Update([]geom.Vector{playerPos})

	// Keep the patrol loop and the monster spawns inside the region
	// reachable from the player's start.
	var reachable []geom.Vector
	for _, p := range spawns[1:] {
		if ctx.Nav.Reachable(p) {
			reachable = append(reachable, p)
		}
	}
	if len(reachable) == 0 {
		reachable = []geom.Vector{playerPos}
	}

	waypoints := make([]geom.Vector, 0, cfg.Player.WaypointCount)
	for i := 0; i < cfg.Player.WaypointCount; i++ {
		waypoints = append(waypoints, reachable[i%len(reachable)])
	}
	s.player = factory.CreatePlayer(ctx, playerPos, waypoints)

	for i, typeName := range cfg.Monster.Spawns {
		pos := reachable[(i+cfg.Player.WaypointCount)%len(reachable)]
		factory.CreateMonster(ctx, pos, typeName)
	}

	log.Printf("[sim] world ready: %d cells (%d walkable), %d monsters, seed %d",
		lvl.NumCells(), len(spawns), len(cfg.Monster.Spawns), cfg.Sim.Seed)
	return s
}

// Tick advances the simulation one fixed step.
func (s *Sim) Tick() {
	ctx := s.Ctx
	if ctx.Tick%int64(s.Config.Sim.NavRefreshTicks) == 0 {
		t := components.Transform.Get(s.player)
		ctx.Nav.Update([]geom.Vector{t.Pos})
	}
	if ctx.Highlights != nil {
		ctx.Highlights.Clear()
	}

	systems.UpdatePlayer(ctx)
	systems.UpdateMonsterAI(ctx)
	systems.UpdateMovement(ctx)
	systems.UpdateCombat(ctx)
	systems.UpdateStagger(ctx)

	if s.overlay != nil {
		s.overlay.Publish(s.frame())
	}
	ctx.Tick++
}

// Close shuts down the overlay if one is running.
func (s *Sim) Close() {
	if s.overlay != nil {
		s.overlay.Close()
	}
}

// Player returns the player entry.
func (s *Sim) Player() *donburi.Entry { return s.player }

func (s *Sim) frame() debug.Frame {
	f := debug.Frame{Tick: s.Ctx.Tick}
	components.Agent.Each(s.Ctx.World, func(e *donburi.Entry) {
		t := components.Transform.Get(e)
		a := components.Agent.Get(e)
		kind := "player"
		if e.HasComponent(components.Monster) {
			kind = components.Monster.Get(e).TypeName
		}
		health := 0
		if e.HasComponent(components.Health) {
			health = components.Health.Get(e).Current
		}
		f.Agents = append(f.Agents, debug.AgentFrame{
			Kind:   kind,
			X:      t.Pos.X,
			Y:      t.Pos.Y,
			Radius: a.Radius,
			Health: health,
		})
	})
	return f
}

func blockCells(l *level.Level, fraction float64, rng *rand.Rand) {
	n := l.NumCells()
	blocked := int(float64(n) * fraction)
	if blocked >= n {
		blocked = n - 1
	}
	for _, i := range rng.Perm(n)[:blocked] {
		l.Cell(int32(i)).Walkable = false
	}
}

func walkableCentroids(l *level.Level) []geom.Vector {
	var out []geom.Vector
	for i := 0; i < l.NumCells(); i++ {
		if c := l.Cell(int32(i)); c.Walkable {
			out = append(out, c.Centroid)
		}
	}
	return out
}
