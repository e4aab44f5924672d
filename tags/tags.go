package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Monster = donburi.NewTag().SetName("Monster")
)

// Resolv tags for the combat overlap space
const (
	ResolvAgent   = "agent"
	ResolvPlayer  = "Player"
	ResolvMonster = "Monster"
)
