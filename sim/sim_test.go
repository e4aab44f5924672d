package sim

import (
	"math"
	"testing"

	"github.com/yohamta/donburi"

	"github.com/depp/intern-apocalypse-sub001/components"
	"github.com/depp/intern-apocalypse-sub001/config"
	"github.com/depp/intern-apocalypse-sub001/geom"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Sim.Seed = 11
	cfg.Level.Size = 10
	cfg.Level.SiteCount = 16
	return cfg
}

func agentPositions(s *Sim) []geom.Vector {
	var out []geom.Vector
	components.Agent.Each(s.Ctx.World, func(e *donburi.Entry) {
		out = append(out, components.Transform.Get(e).Pos)
	})
	return out
}

func TestSimDeterministic(t *testing.T) {
	run := func() []geom.Vector {
		s := New(testConfig())
		for i := 0; i < 120; i++ {
			s.Tick()
		}
		return agentPositions(s)
	}
	a := run()
	b := run()
	if len(a) != len(b) || len(a) == 0 {
		t.Fatalf("agent counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("agent %d diverged: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSimAgentsStayInWalkableCells(t *testing.T) {
	s := New(testConfig())
	for i := 0; i < 300; i++ {
		s.Tick()
		for _, p := range agentPositions(s) {
			if math.Abs(p.X) > s.Ctx.Level.Size || math.Abs(p.Y) > s.Ctx.Level.Size {
				t.Fatalf("tick %d: agent escaped the square at %v", i, p)
			}
			if !s.Ctx.Level.FindCell(p).Walkable {
				t.Fatalf("tick %d: agent inside a blocked cell at %v", i, p)
			}
		}
	}
}

func TestSimMonstersReachStationaryPlayer(t *testing.T) {
	cfg := testConfig()
	cfg.Player.MoveSpeed = 0
	s := New(cfg)

	playerPos := components.Transform.Get(s.Player()).Pos
	closest := math.Inf(1)
	for i := 0; i < 900; i++ {
		s.Tick()
		components.Monster.Each(s.Ctx.World, func(e *donburi.Entry) {
			d := components.Transform.Get(e).Pos.Distance(playerPos)
			if d < closest {
				closest = d
			}
		})
	}
	if closest > 2.5 {
		t.Errorf("no monster closed in on the player, closest approach %.2f", closest)
	}
	if s.Ctx.Stats.Attacks == 0 {
		t.Error("expected at least one attack on a stationary player")
	}
	hp := components.Health.Get(s.Player())
	if s.Ctx.Stats.PlayerDown == 0 && hp.Current == hp.Max {
		t.Error("expected the player to take damage")
	}
}

func TestRunSummaryCounters(t *testing.T) {
	cfg := testConfig()
	cfg.Player.MoveSpeed = 0
	s := New(cfg)
	for i := 0; i < 900; i++ {
		s.Tick()
	}
	sum := s.Summary()
	if sum.Seed != cfg.Sim.Seed || sum.Ticks != 900 {
		t.Errorf("summary header wrong: %+v", sum)
	}
	if sum.Cells != s.Ctx.Level.NumCells() {
		t.Errorf("summary cells = %d, want %d", sum.Cells, s.Ctx.Level.NumCells())
	}
	if sum.Attacks != s.Ctx.Stats.Attacks || sum.Staggers != s.Ctx.Stats.Staggers {
		t.Errorf("summary counters diverge from stats: %+v vs %+v", sum, s.Ctx.Stats)
	}
}
