package components

import (
	"github.com/yohamta/donburi"

	"github.com/depp/intern-apocalypse-sub001/config"
)

type MonsterData struct {
	TypeName   string                    // "Crawler", "Brute" etc...
	TypeConfig *config.MonsterTypeConfig // Cached reference to type configuration

	// Combat
	AttackCooldown int // Ticks until the next attack is allowed
}

var Monster = donburi.NewComponentType[MonsterData]()
