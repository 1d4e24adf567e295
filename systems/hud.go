package systems

import (
	"fmt"

	"github.com/grayfall/dungeonblob/components"
	cfg "github.com/grayfall/dungeonblob/config"
	"github.com/grayfall/dungeonblob/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the level name in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level, err := components.Level.Get(levelEntry).Registry.Current()
	if err != nil {
		return
	}

	face := fonts.HUD.Get()
	margin := int(cfg.HUD.Margin)
	text.Draw(screen, level.Config.ID, face, margin, margin+int(cfg.HUD.FontSize), cfg.HUD.TextColor)

	if cfg.Debug.SkipMenu {
		// Quick-start builds show the body state for tuning work.
		if playerEntry, ok := components.Kinematic.First(e.World); ok {
			b := components.Kinematic.Get(playerEntry).Body
			line := fmt.Sprintf("pos %.1f,%.1f vel %.0f,%.0f grounded %v",
				b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y, b.Grounded)
			text.Draw(screen, line, fonts.Small.Get(), margin, screen.Bounds().Dy()-margin, cfg.HUD.TextColor)
		}
	}
}
