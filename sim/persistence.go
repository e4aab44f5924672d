package sim

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// RunSummary is the per-run record stored on disk.
type RunSummary struct {
	Seed       int64 `json:"seed"`
	Ticks      int64 `json:"ticks"`
	Cells      int   `json:"cells"`
	Attacks    int64 `json:"attacks"`
	WallHits   int64 `json:"wallHits"`
	Staggers   int64 `json:"staggers"`
	PlayerDown int64 `json:"playerDown"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the gdata store for run summaries.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "intern-apocalypse",
	})
	if err != nil {
		log.Printf("[sim] persistence unavailable: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// Summary snapshots the run counters.
func (s *Sim) Summary() RunSummary {
	return RunSummary{
		Seed:       s.Config.Sim.Seed,
		Ticks:      s.Ctx.Tick,
		Cells:      s.Ctx.Level.NumCells(),
		Attacks:    s.Ctx.Stats.Attacks,
		WallHits:   s.Ctx.Stats.WallHits,
		Staggers:   s.Ctx.Stats.Staggers,
		PlayerDown: s.Ctx.Stats.PlayerDown,
	}
}

// SaveSummary stores the last run summary. A missing store is not an error.
func SaveSummary(sum RunSummary) error {
	if gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(sum)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem("lastrun", data); err != nil {
		log.Printf("[sim] could not save run summary: %v", err)
		return err
	}
	return nil
}

// LoadSummary returns the previous run summary, or nil when none exists.
func LoadSummary() (*RunSummary, error) {
	if gdataManager == nil {
		return nil, nil
	}
	data, err := gdataManager.LoadItem("lastrun")
	if err != nil || data == nil {
		return nil, err
	}
	var sum RunSummary
	if err := json.Unmarshal(data, &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}
