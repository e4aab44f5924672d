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

func CreateMonster(ctx *systems.Context, pos geom.Vector, typeName string) *donburi.Entry {
	// Use the requested monster type, default to "Crawler" if not found
	monsterType, exists := ctx.Config.Monster.Types[typeName]
	if !exists {
		typeName = "Crawler"
		monsterType = ctx.Config.Monster.Types[typeName]
	}

	monster := archetypes.Monster.Spawn(ctx.World)

	obj := resolv.NewObject(
		(pos.X-monsterType.Radius+ctx.Level.Size)*systems.SpaceScale,
		(pos.Y-monsterType.Radius+ctx.Level.Size)*systems.SpaceScale,
		monsterType.Radius*2*systems.SpaceScale,
		monsterType.Radius*2*systems.SpaceScale,
	)
	obj.AddTags(tags.ResolvAgent, tags.ResolvMonster)
	obj.Data = monster
	ctx.Space.Add(obj)
	components.Object.SetValue(monster, components.ObjectData{Object: obj})

	components.Transform.SetValue(monster, components.TransformData{
		Pos:    pos,
		Facing: geom.Vector{X: -1, Y: 0},
	})
	components.Agent.SetValue(monster, components.AgentData{
		Radius:    monsterType.Radius,
		MoveSpeed: monsterType.MoveSpeed,
	})
	components.Health.SetValue(monster, components.HealthData{
		Current: monsterType.Health,
		Max:     monsterType.Health,
	})
	components.Monster.SetValue(monster, components.MonsterData{
		TypeName:   typeName,
		TypeConfig: &monsterType,
	})

	return monster
}
