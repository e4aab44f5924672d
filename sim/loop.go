package sim

import (
	"log"
	"time"
)

// Loop drives a Sim at its configured tick rate until stopped.
type Loop struct {
	sim      *Sim
	tickRate int
	running  bool
	stopChan chan struct{}
}

func NewLoop(s *Sim) *Loop {
	return &Loop{
		sim:      s,
		tickRate: s.Config.Sim.TickRate,
		stopChan: make(chan struct{}),
	}
}

func (g *Loop) Run() {
	g.running = true
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[sim] loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.running = false
			log.Println("[sim] loop stopped")
			return
		case <-ticker.C:
			g.sim.Tick()
		}
	}
}

func (g *Loop) Stop() {
	close(g.stopChan)
}
