package components

import (
	"github.com/yohamta/donburi"

	"github.com/depp/intern-apocalypse-sub001/geom"
)

type TransformData struct {
	Pos    geom.Vector
	Facing geom.Vector // unit vector, last nonzero movement direction
}

var Transform = donburi.NewComponentType[TransformData]()
