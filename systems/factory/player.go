package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/depp/intern-apocalypse-sub001/archetypes"
	"github.com/depp/intern-apocalypse-sub001/components"
	"github.com/depp/intern-apocalypse-sub001/geom"
	"github.com/depp/intern-apocalypse-sub001/systems"
	"github.com/depp/intern-apocalypse-sub001/tags"
)

func CreatePlayer(ctx *systems.Context, pos geom.Vector, waypoints []geom.Vector) *donburi.Entry {
	cfg := ctx.Config.Player
	player := archetypes.Player.Spawn(ctx.World)

	obj := resolv.NewObject(
		(pos.X-cfg.Radius+ctx.Level.Size)*systems.SpaceScale,
		(pos.Y-cfg.Radius+ctx.Level.Size)*systems.SpaceScale,
		cfg.Radius*2*systems.SpaceScale,
		cfg.Radius*2*systems.SpaceScale,
	)
	obj.AddTags(tags.ResolvAgent, tags.ResolvPlayer)
	obj.Data = player
	ctx.Space.Add(obj)
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Transform.SetValue(player, components.TransformData{
		Pos:    pos,
		Facing: geom.Vector{X: 1, Y: 0},
	})
	components.Agent.SetValue(player, components.AgentData{
		Radius:    cfg.Radius,
		MoveSpeed: cfg.MoveSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Health,
		Max:     cfg.Health,
	})
	components.Player.SetValue(player, components.PlayerData{
		Waypoints: waypoints,
	})
	components.Stagger.SetValue(player, components.StaggerData{
		Multiplier: 1,
	})

	return player
}
