package scenes

import (
	"image/color"
	"sort"
	"sync"

	cfg "github.com/grayfall/dungeonblob/config"
	"github.com/grayfall/dungeonblob/systems"
	"github.com/grayfall/dungeonblob/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelSelectScene displays the level picker using ebitenui
type LevelSelectScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	selectUI     *ui.LevelSelectUI
	once         sync.Once
	chosenLevel  string
	shouldGoBack bool
}

// NewLevelSelectScene creates a new level select scene
func NewLevelSelectScene(sc SceneChanger) *LevelSelectScene {
	return &LevelSelectScene{sceneChanger: sc}
}

func (ls *LevelSelectScene) Update() {
	ls.once.Do(ls.configure)

	// Update ECS for audio
	ls.ecs.Update()

	// Update ebitenui
	ls.selectUI.Update()

	if ls.chosenLevel != "" {
		systems.StopMusic(ls.ecs)
		ls.sceneChanger.ChangeScene(NewWorldScene(ls.sceneChanger, ls.chosenLevel))
		return
	}
	if ls.shouldGoBack {
		ls.sceneChanger.ChangeScene(NewMenuScene(ls.sceneChanger))
		return
	}
}

func (ls *LevelSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if ls.ecs == nil {
		return
	}

	ls.selectUI.UI.Draw(screen)
}

func (ls *LevelSelectScene) configure() {
	ls.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system
	ls.ecs.AddSystem(systems.UpdateAudio)

	levelIDs := make([]string, 0, len(cfg.Levels.Table))
	for id := range cfg.Levels.Table {
		levelIDs = append(levelIDs, id)
	}
	sort.Strings(levelIDs)

	savedLevel := ""
	if progress, err := systems.LoadProgress(); err == nil && progress != nil {
		savedLevel = progress.LevelID
	}

	ls.selectUI = ui.NewLevelSelectUI(
		levelIDs,
		savedLevel,
		func(levelID string) { ls.chosenLevel = levelID },
		func() { ls.shouldGoBack = true },
	)

	// Keep the menu music going while picking
	systems.PlayMusic(ls.ecs, cfg.Sound.MusicPath)
}
