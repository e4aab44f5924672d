package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// StaggerData slows an entity after it takes a hit. Multiplier eases back
// from the slowdown floor to 1 over the stagger duration.
type StaggerData struct {
	Tween      *gween.Tween
	Multiplier float64
	Active     bool
}

// SpeedFactor is the movement multiplier to apply this tick.
func (s *StaggerData) SpeedFactor() float64 {
	if !s.Active {
		return 1
	}
	return s.Multiplier
}

var Stagger = donburi.NewComponentType[StaggerData]()
