package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/depp/intern-apocalypse-sub001/config"
	"github.com/depp/intern-apocalypse-sub001/sim"
)

func main() {
	cfg := config.Default()
	seed := flag.Int64("seed", cfg.Sim.Seed, "world generation seed")
	ticks := flag.Int64("ticks", 0, "stop after this many ticks (0 runs until interrupted)")
	tickRate := flag.Int("tickrate", cfg.Sim.TickRate, "simulation ticks per second")
	overlay := flag.String("overlay", cfg.Debug.OverlayAddr, "debug overlay address, e.g. localhost:8080 (empty disables)")
	flag.Parse()

	cfg.Sim.Seed = *seed
	cfg.Sim.TickRate = *tickRate
	cfg.Debug.OverlayAddr = *overlay

	if err := sim.InitPersistence(); err == nil {
		if prev, _ := sim.LoadSummary(); prev != nil {
			log.Printf("[sim] previous run: seed %d, %d ticks, %d attacks", prev.Seed, prev.Ticks, prev.Attacks)
		}
	}

	s := sim.New(cfg)
	defer s.Close()

	if *ticks > 0 {
		for i := int64(0); i < *ticks; i++ {
			s.Tick()
		}
	} else {
		loop := sim.NewLoop(s)
		go func() {
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig
			loop.Stop()
		}()
		loop.Run()
	}

	sum := s.Summary()
	log.Printf("[sim] run finished: %d ticks, %d attacks, %d wall hits, %d staggers, %d downs",
		sum.Ticks, sum.Attacks, sum.WallHits, sum.Staggers, sum.PlayerDown)
	if err := sim.SaveSummary(sum); err != nil {
		log.Printf("[sim] save summary: %v", err)
	}
}
