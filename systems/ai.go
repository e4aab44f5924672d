package systems

import (
	"github.com/yohamta/donburi"

	"github.com/depp/intern-apocalypse-sub001/components"
	"github.com/depp/intern-apocalypse-sub001/geom"
	"github.com/depp/intern-apocalypse-sub001/tags"
)

// UpdateMonsterAI points every monster's velocity along the navigation
// field toward the player. Monsters inside attack range hold still and
// face their target; combat.go handles the actual swing.
func UpdateMonsterAI(ctx *Context) {
	playerEntry, ok := components.Player.First(ctx.World)

	tags.Monster.Each(ctx.World, func(e *donburi.Entry) {
		motion := components.Motion.Get(e)
		if !ok {
			motion.Vel = geom.Vector{}
			return
		}
		m := components.Monster.Get(e)
		t := components.Transform.Get(e)
		agent := components.Agent.Get(e)
		playerPos := components.Transform.Get(playerEntry).Pos
		playerRadius := components.Agent.Get(playerEntry).Radius

		// AttackRange measures reach beyond body contact.
		stopAt := m.TypeConfig.AttackRange + agent.Radius + playerRadius
		if t.Pos.Distance(playerPos) <= stopAt {
			motion.Vel = geom.Vector{}
			if face := playerPos.Sub(t.Pos).Normalize(); !face.IsZero() {
				t.Facing = face
			}
			return
		}

		route := ctx.Nav.Navigate(t.Pos)
		motion.Vel = route.Direction.Scale(m.TypeConfig.MoveSpeed)
	})
}
