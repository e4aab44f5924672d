package sim

import (
	"math/rand"

	"github.com/depp/intern-apocalypse-sub001/config"
	"github.com/depp/intern-apocalypse-sub001/geom"
	"github.com/depp/intern-apocalypse-sub001/level"
)

// generateSites rejection-samples sites inside the square with a minimum
// spacing between them. Gives up on a site after enough failed draws, so
// an overcrowded config yields fewer cells instead of spinning.
func generateSites(cfg config.LevelConfig, rng *rand.Rand) []geom.Vector {
	const triesPerSite = 200
	limit := cfg.Size - cfg.MinSiteSpacing/2
	sites := make([]geom.Vector, 0, cfg.SiteCount)
	for len(sites) < cfg.SiteCount {
		placed := false
		for try := 0; try < triesPerSite; try++ {
			p := geom.Vector{
				X: (rng.Float64()*2 - 1) * limit,
				Y: (rng.Float64()*2 - 1) * limit,
			}
			if minSpacingOK(sites, p, cfg.MinSiteSpacing) {
				sites = append(sites, p)
				placed = true
				break
			}
		}
		if !placed {
			break
		}
	}
	return sites
}

func minSpacingOK(sites []geom.Vector, p geom.Vector, spacing float64) bool {
	for _, s := range sites {
		if s.DistanceSq(p) < spacing*spacing {
			return false
		}
	}
	return true
}

// buildLevel generates sites and applies centroid relaxation, rebuilding
// the subdivision from scratch each pass. Relaxation evens out cell sizes
// so walkways do not pinch too tight for the agents.
func buildLevel(cfg config.LevelConfig, rng *rand.Rand) *level.Level {
	sites := generateSites(cfg, rng)
	l := level.Build(cfg.Size, sites)
	for pass := 0; pass < cfg.RelaxPasses; pass++ {
		for i := range sites {
			sites[i] = l.Cell(int32(i)).Centroid
		}
		l = level.Build(cfg.Size, sites)
	}
	return l
}
