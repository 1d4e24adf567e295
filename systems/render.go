package systems

import (
	"github.com/grayfall/dungeonblob/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawSprites renders every sprite entity relative to the camera. Entities
// off screen are culled before any matrix work.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Culling bounds
	padding := 64.0
	minX := camera.Position.X - float64(width)/2 - padding
	maxX := camera.Position.X + float64(width)/2 + padding
	minY := camera.Position.Y - float64(height)/2 - padding
	maxY := camera.Position.Y + float64(height)/2 + padding

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil {
			return
		}

		// Sprites anchor on the kinematic body center when present,
		// otherwise on the resolv object box.
		var centerX, centerY float64
		switch {
		case e.HasComponent(components.Kinematic):
			kin := components.Kinematic.Get(e)
			centerX, centerY = kin.Body.Pos.X, kin.Body.Pos.Y
		case e.HasComponent(components.Object):
			o := components.Object.Get(e)
			centerX, centerY = o.X+o.W/2, o.Y+o.H/2
		default:
			return
		}

		if centerX < minX || centerX > maxX || centerY < minY || centerY > maxY {
			return
		}

		imgW := float64(sprite.Image.Bounds().Dx())
		imgH := float64(sprite.Image.Bounds().Dy())

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-imgW/2, -imgH/2)
		if sprite.FlipX {
			drawOp.GeoM.Scale(-1, 1)
		}
		drawOp.GeoM.Translate(centerX, centerY)
		drawOp.GeoM.Translate(float64(width)/2-camera.Position.X, float64(height)/2-camera.Position.Y)

		screen.DrawImage(sprite.Image, drawOp)
	})
}

// UpdateSpriteFacing mirrors the player sprite to the movement direction.
func UpdateSpriteFacing(e *ecs.ECS) {
	components.Kinematic.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Sprite) {
			return
		}
		kin := components.Kinematic.Get(entry)
		sprite := components.Sprite.Get(entry)
		sprite.FlipX = kin.Facing < 0
	})
}
