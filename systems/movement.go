package systems

import (
	"github.com/yohamta/donburi"

	"github.com/depp/intern-apocalypse-sub001/components"
	"github.com/depp/intern-apocalypse-sub001/walk"
)

// hitHighlightColor marks edges agents collided with this tick.
const hitHighlightColor = "#ff5040"

// UpdateMovement turns every agent's desired velocity into an actual
// displacement through the collision resolver, one batch per tick, then
// mirrors the resolved positions into the combat overlap space.
func UpdateMovement(ctx *Context) {
	dt := ctx.Dt()
	var entries []*donburi.Entry
	var cs []walk.Collider
	components.Agent.Each(ctx.World, func(e *donburi.Entry) {
		agent := components.Agent.Get(e)
		t := components.Transform.Get(e)
		motion := components.Motion.Get(e)

		scale := dt
		if e.HasComponent(components.Stagger) {
			scale *= components.Stagger.Get(e).SpeedFactor()
		}
		entries = append(entries, e)
		cs = append(cs, walk.Collider{
			Pos:    t.Pos,
			Delta:  motion.Vel.Scale(scale),
			Radius: agent.Radius,
		})
	})

	ctx.Walker.ResetHits()
	ctx.Walker.ResolveColliders(cs)

	for i, e := range entries {
		t := components.Transform.Get(e)
		moved := cs[i].Pos.Sub(t.Pos)
		t.Pos = cs[i].Pos
		if !moved.IsZero() {
			t.Facing = moved.Normalize()
		}
		if e.HasComponent(components.Object) {
			agent := components.Agent.Get(e)
			obj := components.Object.Get(e)
			// Overlap space pixels, origin at the square's corner.
			obj.X = (t.Pos.X - agent.Radius + ctx.Level.Size) * SpaceScale
			obj.Y = (t.Pos.Y - agent.Radius + ctx.Level.Size) * SpaceScale
			obj.Update()
		}
	}

	for _, id := range ctx.Walker.HitEdges {
		ctx.Stats.WallHits++
		if ctx.Highlights != nil {
			ctx.Highlights.Set(id, hitHighlightColor)
		}
	}
}
