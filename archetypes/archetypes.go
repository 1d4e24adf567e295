package archetypes

import (
	"github.com/grayfall/dungeonblob/components"
	cfg "github.com/grayfall/dungeonblob/config"
	"github.com/grayfall/dungeonblob/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Kinematic,
		components.Control,
		components.Sprite,
		components.Object,
	)
	TransitionZone = newArchetype(
		tags.TransitionZone,
		components.Zone,
		components.Object,
	)
	HazardZone = newArchetype(
		tags.HazardZone,
		components.Zone,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
