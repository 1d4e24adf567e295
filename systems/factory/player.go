package factory

import (
	"github.com/grayfall/dungeonblob/archetypes"
	"github.com/grayfall/dungeonblob/assets"
	"github.com/grayfall/dungeonblob/components"
	cfg "github.com/grayfall/dungeonblob/config"
	"github.com/grayfall/dungeonblob/kinematics"
	"github.com/grayfall/dungeonblob/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player entity centered on the given spawn point,
// with a fresh body and an overlap object registered in the space.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	components.Kinematic.SetValue(player, components.KinematicData{
		Body:   kinematics.NewBody(x, y, w, h),
		Facing: cfg.DirectionRight,
	})

	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Sprite.SetValue(player, components.SpriteData{
		Image: assets.PlayerImage(int(w), int(h)),
	})

	return player
}

// RespawnPlayer moves an existing player to a spawn point and clears all
// motion state, as if freshly spawned.
func RespawnPlayer(player *donburi.Entry, x, y float64) {
	kin := components.Kinematic.Get(player)
	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	kin.Body = kinematics.NewBody(x, y, w, h)
	kin.Facing = cfg.DirectionRight

	ctrl := components.Control.Get(player)
	*ctrl = components.ControlData{}

	obj := components.Object.Get(player)
	if obj.Object != nil {
		obj.X = x - w/2
		obj.Y = y - h/2
		obj.Update()
	}
}
