package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/grayfall/dungeonblob/assets"
	cfg "github.com/grayfall/dungeonblob/config"
	"github.com/grayfall/dungeonblob/systems"
	"github.com/grayfall/dungeonblob/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Collision space bounds. Sized past the largest level so every zone and
// player position stays inside the space.
const (
	spaceWidth    = 4096
	spaceHeight   = 1024
	spaceCellSize = 64
)

// WorldScene runs the platforming gameplay: one loaded level, the player,
// and the fixed-step movement loop.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	startLevel   string
	once         sync.Once
}

// NewWorldScene creates a gameplay scene that starts at the given level ID.
func NewWorldScene(sc SceneChanger, startLevel string) *WorldScene {
	return &WorldScene{sceneChanger: sc, startLevel: startLevel}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()

	e := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused for menu sounds)
	e.AddSystem(systems.UpdateAudio)

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateSettingsMenu)

	// Gameplay systems halt while paused
	e.AddSystem(systems.WithPauseCheck(systems.UpdateControl))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateMovement))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateZones))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateSpriteFacing))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	// The fade must finish even if it was mid-flight when something paused.
	e.AddSystem(systems.UpdateTransition)

	// Renderers (overlays last)
	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawSprites)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawTransition)
	e.AddRenderer(cfg.Default, systems.DrawPause)
	e.AddRenderer(cfg.Default, systems.DrawSettingsMenu)

	ws.ecs = e

	factory.CreateSpace(e, spaceWidth, spaceHeight, spaceCellSize, spaceCellSize)
	factory.CreateLevel(e, assets.LevelFS())
	factory.CreateCamera(e, 0, 0)
	factory.CreatePlayer(e, 0, 0)

	start := ws.startLevel
	if _, ok := cfg.Levels.Table[start]; !ok {
		start = cfg.Levels.FirstLevel
	}
	if err := systems.SwitchLevel(e, start); err != nil {
		log.Printf("Warning: could not load level %q: %v", start, err)
		if start != cfg.Levels.FirstLevel {
			if err := systems.SwitchLevel(e, cfg.Levels.FirstLevel); err != nil {
				panic("failed to load first level: " + err.Error())
			}
		} else {
			panic("failed to load first level: " + err.Error())
		}
	}

	systems.PlayMusic(e, cfg.Sound.MusicPath)
	systems.ResetMovementClock()
}
