package components

import (
	"github.com/yohamta/donburi"

	"github.com/depp/intern-apocalypse-sub001/geom"
)

// PlayerData drives the headless player stand-in: it walks a fixed loop of
// waypoints so monsters always have a moving target to chase.
type PlayerData struct {
	Waypoints []geom.Vector
	Next      int
}

var Player = donburi.NewComponentType[PlayerData]()
