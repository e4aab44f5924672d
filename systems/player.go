package systems

import (
	"github.com/yohamta/donburi"

	"github.com/depp/intern-apocalypse-sub001/components"
	"github.com/depp/intern-apocalypse-sub001/tags"
)

// waypointReachDistance is how close the player must get before switching
// to the next waypoint.
const waypointReachDistance = 0.25

// UpdatePlayer steers the player stand-in along its waypoint loop.
func UpdatePlayer(ctx *Context) {
	tags.Player.Each(ctx.World, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		if len(p.Waypoints) == 0 {
			return
		}
		t := components.Transform.Get(e)
		agent := components.Agent.Get(e)
		motion := components.Motion.Get(e)

		to := p.Waypoints[p.Next].Sub(t.Pos)
		if to.Length() < waypointReachDistance {
			p.Next = (p.Next + 1) % len(p.Waypoints)
			to = p.Waypoints[p.Next].Sub(t.Pos)
		}
		motion.Vel = to.Normalize().Scale(agent.MoveSpeed)
	})
}
