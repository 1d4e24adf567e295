package systems

import (
	"math"

	"github.com/grayfall/dungeonblob/components"
	"github.com/grayfall/dungeonblob/config"
	"github.com/grayfall/dungeonblob/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the view toward the player, clamped so the level
// always fills the screen. Levels smaller than the screen pin the camera
// to the level center.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	kin := components.Kinematic.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level, err := components.Level.Get(levelEntry).Registry.Current()
	if err != nil {
		return
	}

	targetX := kin.Body.Pos.X
	targetY := kin.Body.Pos.Y

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(level.File.PixelWidth)
	levelHeight := float64(level.File.PixelHeight)

	minCameraX := screenWidth / 2
	maxCameraX := levelWidth - screenWidth/2
	minCameraY := screenHeight / 2
	maxCameraY := levelHeight - screenHeight/2

	if maxCameraX < minCameraX {
		targetX = levelWidth / 2
	} else {
		targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	}
	if maxCameraY < minCameraY {
		targetY = levelHeight / 2
	} else {
		targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}
