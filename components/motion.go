package components

import (
	"github.com/yohamta/donburi"

	"github.com/depp/intern-apocalypse-sub001/geom"
)

// MotionData is the velocity an entity wants this tick, in units/second.
// The movement system turns it into an actual displacement through the
// collision resolver.
type MotionData struct {
	Vel geom.Vector
}

var Motion = donburi.NewComponentType[MotionData]()
