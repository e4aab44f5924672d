package components

import "github.com/yohamta/donburi"

// AgentData marks an entity as a moving disc the resolver is responsible
// for.
type AgentData struct {
	Radius    float64
	MoveSpeed float64
}

var Agent = donburi.NewComponentType[AgentData]()
