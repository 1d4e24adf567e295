package systems

import (
	"fmt"

	"github.com/grayfall/dungeonblob/assets"
	"github.com/grayfall/dungeonblob/components"
	cfg "github.com/grayfall/dungeonblob/config"
	"github.com/grayfall/dungeonblob/systems/factory"
	"github.com/grayfall/dungeonblob/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// SwitchLevel loads the level with the given ID and, on success, rebuilds
// the trigger zones and moves the player to the new level's spawn. On any
// error nothing changes: the registry keeps the previous level active and
// the old zones stay in place.
func SwitchLevel(e *ecs.ECS, id string) error {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return fmt.Errorf("no level entity")
	}
	levelData := components.Level.Get(levelEntry)

	lc, ok := cfg.Levels.Table[id]
	if !ok {
		return fmt.Errorf("unknown level %q", id)
	}

	if err := levelData.Registry.LoadLevel(levelData.Files, lc); err != nil {
		return err
	}
	level, err := levelData.Registry.Current()
	if err != nil {
		return err
	}

	factory.DestroyZones(e)
	factory.CreateZones(e, level.File)

	if playerEntry, ok := tags.Player.First(e.World); ok {
		factory.RespawnPlayer(playerEntry, level.SpawnX, level.SpawnY)
	}
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.Position.X = level.SpawnX
		camera.Position.Y = level.SpawnY
	}

	ResetMovementClock()
	SaveProgress(e, id)
	return nil
}

// respawnAtLevelStart resets the player to the active level's spawn point
// without reloading anything.
func respawnAtLevelStart(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level, err := components.Level.Get(levelEntry).Registry.Current()
	if err != nil {
		return
	}
	if playerEntry, ok := tags.Player.First(e.World); ok {
		factory.RespawnPlayer(playerEntry, level.SpawnX, level.SpawnY)
	}
	ResetMovementClock()
}

// DrawLevel renders the solid cells of the active collision layer.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	m, err := components.Level.Get(levelEntry).Registry.ActiveMap()
	if err != nil {
		return
	}

	tile := assets.TileImage(m.CellSize())
	offX := float64(width)/2 - camera.Position.X
	offY := float64(height)/2 - camera.Position.Y

	// Only walk the rows and columns the view can see.
	minCX := m.CellIndex(camera.Position.X - float64(width)/2)
	maxCX := m.CellIndex(camera.Position.X + float64(width)/2)
	minCY := m.CellIndex(camera.Position.Y - float64(height)/2)
	maxCY := m.CellIndex(camera.Position.Y + float64(height)/2)

	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			if !m.IsSolid(cx, cy) {
				continue
			}
			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			drawOp.GeoM.Translate(m.CellOrigin(cx)+offX, m.CellOrigin(cy)+offY)
			screen.DrawImage(tile, drawOp)
		}
	}
}
