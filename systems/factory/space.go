package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/depp/intern-apocalypse-sub001/archetypes"
	"github.com/depp/intern-apocalypse-sub001/components"
	"github.com/depp/intern-apocalypse-sub001/systems"
)

// spaceCellSize keeps the hash cells smaller than the smallest mirrored
// agent box (the tightest agent is Radius 0.35, 11.2 px across).
const spaceCellSize = 8

// CreateSpace builds the resolv space covering the whole level square.
// Space coordinates are pixels: world positions shift by +Size on both
// axes and scale by systems.SpaceScale when mirrored in.
func CreateSpace(ctx *systems.Context) *donburi.Entry {
	extent := int(2 * ctx.Level.Size * systems.SpaceScale)
	entry := archetypes.Space.Spawn(ctx.World)
	space := resolv.NewSpace(extent, extent, spaceCellSize, spaceCellSize)
	components.Space.SetValue(entry, components.SpaceData{Space: space})
	ctx.Space = space
	return entry
}
