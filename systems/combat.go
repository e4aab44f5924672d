package systems

import (
	"log"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"

	"github.com/depp/intern-apocalypse-sub001/components"
	"github.com/depp/intern-apocalypse-sub001/tags"
)

// UpdateCombat runs monster melee attacks: a forward overlap probe against
// the player in the resolv space, damage on contact, and a stagger tween on
// the victim.
func UpdateCombat(ctx *Context) {
	tags.Monster.Each(ctx.World, func(e *donburi.Entry) {
		m := components.Monster.Get(e)
		if m.AttackCooldown > 0 {
			m.AttackCooldown--
			return
		}

		t := components.Transform.Get(e)
		obj := components.Object.Get(e)
		reach := t.Facing.Scale(m.TypeConfig.AttackRange * SpaceScale)
		check := obj.Check(reach.X, reach.Y, tags.ResolvPlayer)
		if check == nil {
			return
		}
		victims := check.ObjectsByTags(tags.ResolvPlayer)
		if len(victims) == 0 {
			return
		}

		victim, okEntry := victims[0].Data.(*donburi.Entry)
		if !okEntry || !victim.Valid() {
			return
		}
		hitEntity(ctx, victim, m.TypeConfig.AttackDamage, m.TypeConfig.StaggerSlowdown, m.TypeConfig.StaggerDuration)
		m.AttackCooldown = m.TypeConfig.AttackCooldown
		ctx.Stats.Attacks++
	})
}

func hitEntity(ctx *Context, e *donburi.Entry, damage int, slowdown float64, duration float32) {
	if e.HasComponent(components.Health) {
		hp := components.Health.Get(e)
		hp.Current -= damage
		if hp.Current <= 0 {
			// The headless run has no death sequence; count the down and
			// reset so the chase continues.
			ctx.Stats.PlayerDown++
			hp.Current = hp.Max
			log.Printf("[sim] player downed (tick %d), health reset", ctx.Tick)
		}
	}
	if e.HasComponent(components.Stagger) {
		st := components.Stagger.Get(e)
		st.Tween = gween.New(float32(slowdown), 1, duration, ease.OutQuad)
		st.Multiplier = slowdown
		st.Active = true
		ctx.Stats.Staggers++
	}
}
