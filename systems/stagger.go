package systems

import (
	"github.com/yohamta/donburi"

	"github.com/depp/intern-apocalypse-sub001/components"
)

// UpdateStagger eases active stagger multipliers back toward full speed.
func UpdateStagger(ctx *Context) {
	dt := float32(ctx.Dt())
	components.Stagger.Each(ctx.World, func(e *donburi.Entry) {
		s := components.Stagger.Get(e)
		if !s.Active || s.Tween == nil {
			return
		}
		v, done := s.Tween.Update(dt)
		s.Multiplier = float64(v)
		if done {
			s.Active = false
			s.Multiplier = 1
			s.Tween = nil
		}
	})
}
