package factory

import (
	"github.com/grayfall/dungeonblob/archetypes"
	"github.com/grayfall/dungeonblob/components"
	"github.com/grayfall/dungeonblob/tags"
	"github.com/grayfall/dungeonblob/tilemap"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTransitionZone spawns an invisible trigger that starts a level
// switch when the player overlaps it.
func CreateTransitionZone(ecs *ecs.ECS, z tilemap.TransitionZone) *donburi.Entry {
	zone := archetypes.TransitionZone.Spawn(ecs)
	components.Zone.SetValue(zone, components.ZoneData{
		Kind:   components.ZoneTransition,
		Target: z.Target,
	})
	attachZoneObject(ecs, zone, z.X, z.Y, z.W, z.H, tags.ResolvTransition)
	return zone
}

// CreateHazardZone spawns an invisible trigger that respawns the player.
func CreateHazardZone(ecs *ecs.ECS, z tilemap.HazardZone) *donburi.Entry {
	zone := archetypes.HazardZone.Spawn(ecs)
	components.Zone.SetValue(zone, components.ZoneData{
		Kind: components.ZoneHazard,
	})
	attachZoneObject(ecs, zone, z.X, z.Y, z.W, z.H, tags.ResolvHazard)
	return zone
}

// CreateZones spawns every trigger authored in the level file.
func CreateZones(ecs *ecs.ECS, file *tilemap.LevelFile) {
	for _, t := range file.Transitions {
		CreateTransitionZone(ecs, t)
	}
	for _, h := range file.Hazards {
		CreateHazardZone(ecs, h)
	}
}

// DestroyZones removes all zone entities and their space objects, ahead of
// loading a different level's set.
func DestroyZones(e *ecs.ECS) {
	var doomed []*donburi.Entry
	components.Zone.Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	})
	for _, entry := range doomed {
		obj := components.Object.Get(entry)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
		entry.Remove()
	}
}

func attachZoneObject(ecs *ecs.ECS, zone *donburi.Entry, x, y, w, h float64, tag string) {
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = zone
	components.Object.SetValue(zone, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
