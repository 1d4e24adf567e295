package systems

import (
	"fmt"

	"github.com/grayfall/dungeonblob/components"
	cfg "github.com/grayfall/dungeonblob/config"
	"github.com/grayfall/dungeonblob/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// UpdateSettingsMenu handles settings navigation and value changes.
func UpdateSettingsMenu(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)

	if !settings.IsOpen {
		return
	}

	input := getOrCreateInput(e)

	if input.JustPressed(cfg.ActionMenuUp) {
		settings.SelectedOption = components.SettingsMenuOption(
			(int(settings.SelectedOption) - 1 + numSettingsOptions) % numSettingsOptions,
		)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
	if input.JustPressed(cfg.ActionMenuDown) {
		settings.SelectedOption = components.SettingsMenuOption(
			(int(settings.SelectedOption) + 1) % numSettingsOptions,
		)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}

	// Left/right adjust the highlighted value
	if input.JustPressed(cfg.ActionMoveLeft) {
		adjustSetting(e, settings, -1)
	}
	if input.JustPressed(cfg.ActionMoveRight) {
		adjustSetting(e, settings, +1)
	}

	// Select/Enter - for toggles and Back
	if input.JustPressed(cfg.ActionMenuSelect) {
		switch settings.SelectedOption {
		case components.SettingsOptMute:
			toggleMute(e, settings)
			PlaySFX(e, cfg.SoundMenuSelect)
		case components.SettingsOptFullscreen:
			toggleFullscreen(settings)
			PlaySFX(e, cfg.SoundMenuSelect)
		case components.SettingsOptBack:
			closeSettings(e, settings)
			return
		}
	}

	if input.JustPressed(cfg.ActionMenuBack) || input.JustPressed(cfg.ActionPause) {
		closeSettings(e, settings)
	}
}

// adjustSetting changes the value for the selected option
func adjustSetting(e *ecs.ECS, s *components.SettingsMenuData, direction int) {
	switch s.SelectedOption {
	case components.SettingsOptMusicVolume:
		s.MusicVolume = adjustVolumeStep(s.MusicVolume, direction)
		if !s.Muted {
			SetMusicVolume(e, s.MusicVolume)
		}
		PlaySFX(e, cfg.SoundMenuNavigate)

	case components.SettingsOptSFXVolume:
		s.SFXVolume = adjustVolumeStep(s.SFXVolume, direction)
		if !s.Muted {
			SetSFXVolume(e, s.SFXVolume)
		}
		// Play preview sound
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptMute:
		toggleMute(e, s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptFullscreen:
		toggleFullscreen(s)
		PlaySFX(e, cfg.SoundMenuSelect)
	}
}

// adjustVolumeStep adjusts volume by stepping through predefined values
func adjustVolumeStep(current float64, direction int) float64 {
	steps := cfg.SettingsMenu.VolumeSteps
	currentIdx := findClosestStepIndex(current, steps)
	newIdx := currentIdx + direction
	if newIdx < 0 {
		newIdx = 0
	}
	if newIdx >= len(steps) {
		newIdx = len(steps) - 1
	}
	return steps[newIdx]
}

// findClosestStepIndex finds the closest step index for a volume value
func findClosestStepIndex(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0 // Start with a large difference
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

// toggleMute toggles the mute state
func toggleMute(e *ecs.ECS, s *components.SettingsMenuData) {
	s.Muted = !s.Muted
	if s.Muted {
		// Store current volumes and set to 0
		s.PreMuteMusicVol = s.MusicVolume
		s.PreMuteSFXVol = s.SFXVolume
		SetMusicVolume(e, 0)
		SetSFXVolume(e, 0)
	} else {
		// Restore volumes
		SetMusicVolume(e, s.MusicVolume)
		SetSFXVolume(e, s.SFXVolume)
	}
}

// toggleFullscreen toggles fullscreen mode
func toggleFullscreen(s *components.SettingsMenuData) {
	s.Fullscreen = !s.Fullscreen
	ebiten.SetFullscreen(s.Fullscreen)
}

// closeSettings closes the settings menu and saves settings
func closeSettings(e *ecs.ECS, s *components.SettingsMenuData) {
	s.IsOpen = false
	PlaySFX(e, cfg.SoundMenuSelect)
	SaveCurrentSettings(s)
}

// DrawSettingsMenu renders the settings overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(e)

	if !settings.IsOpen {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.SettingsMenu.OverlayColor,
		false,
	)

	titleFont := fonts.Bold.Get()
	title := "SETTINGS"
	titleWidth := len(title) * 12
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.SettingsMenu.TitleY), cfg.SettingsMenu.TitleColor)

	itemFont := fonts.HUD.Get()
	itemHeight := cfg.SettingsMenu.ItemHeight
	itemGap := cfg.SettingsMenu.ItemGap

	for i := 0; i < numSettingsOptions; i++ {
		opt := components.SettingsMenuOption(i)
		y := int(cfg.SettingsMenu.ItemsStartY + float64(i)*(itemHeight+itemGap))

		textColor := cfg.SettingsMenu.TextNormal
		if opt == settings.SelectedOption {
			textColor = cfg.SettingsMenu.TextSelected
		}

		text.Draw(screen, settingLabel(opt), itemFont, int(cfg.SettingsMenu.LabelX), y, textColor)
		if value := settingValue(settings, opt); value != "" {
			text.Draw(screen, value, itemFont, int(cfg.SettingsMenu.ValueX), y, textColor)
		}
	}

	input := getOrCreateInput(e)
	hint := getSettingsHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	hintWidth := len(hint) * 7
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.SettingsMenu.TextNormal)
}

// settingLabel returns the display text for a settings option
func settingLabel(opt components.SettingsMenuOption) string {
	switch opt {
	case components.SettingsOptMusicVolume:
		return "Music Volume"
	case components.SettingsOptSFXVolume:
		return "SFX Volume"
	case components.SettingsOptMute:
		return "Mute"
	case components.SettingsOptFullscreen:
		return "Fullscreen"
	case components.SettingsOptBack:
		return "< Back"
	}
	return ""
}

// settingValue returns the display value for a settings option
func settingValue(s *components.SettingsMenuData, opt components.SettingsMenuOption) string {
	switch opt {
	case components.SettingsOptMusicVolume:
		return formatVolumeBar(s.MusicVolume)
	case components.SettingsOptSFXVolume:
		return formatVolumeBar(s.SFXVolume)
	case components.SettingsOptMute:
		return formatToggle(s.Muted)
	case components.SettingsOptFullscreen:
		return formatToggle(s.Fullscreen)
	}
	return ""
}

// formatVolumeBar creates a visual volume bar
func formatVolumeBar(volume float64) string {
	percentage := int(volume * 100)
	filled := int(volume * 10)
	bar := ""
	for i := 0; i < 10; i++ {
		if i < filled {
			bar += "|"
		} else {
			bar += "."
		}
	}
	return fmt.Sprintf("[%s] %d%%", bar, percentage)
}

// formatToggle formats a boolean as On/Off
func formatToggle(value bool) string {
	if value {
		return "[X] On"
	}
	return "[ ] Off"
}

// getSettingsHint returns the appropriate hint for settings navigation
func getSettingsHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "D-Pad: Navigate   Left/Right: Change   A: Select   B: Back"
	}
	return "Arrows: Navigate   Left/Right: Change   Enter: Select   Esc: Back"
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.SettingsMenu))

		// Initialize with current audio values
		musicVol := GetMusicVolume()
		sfxVol := GetSFXVolume()

		components.SettingsMenu.SetValue(ent, components.SettingsMenuData{
			IsOpen:          false,
			SelectedOption:  components.SettingsOptMusicVolume,
			MusicVolume:     musicVol,
			SFXVolume:       sfxVol,
			Muted:           false,
			Fullscreen:      ebiten.IsFullscreen(),
			PreMuteMusicVol: musicVol,
			PreMuteSFXVol:   sfxVol,
		})
	}

	ent, _ := components.SettingsMenu.First(e.World)
	return components.SettingsMenu.Get(ent)
}

// OpenSettings opens the settings menu from a specific origin
func OpenSettings(e *ecs.ECS, fromPause bool) {
	settings := GetOrCreateSettingsMenu(e)
	settings.IsOpen = true
	settings.OpenedFromPause = fromPause
	settings.SelectedOption = components.SettingsOptMusicVolume

	// Sync current values
	settings.MusicVolume = GetMusicVolume()
	settings.SFXVolume = GetSFXVolume()
	settings.Fullscreen = ebiten.IsFullscreen()
}

// IsSettingsOpen returns true if the settings menu is currently open
func IsSettingsOpen(e *ecs.ECS) bool {
	entry, ok := components.SettingsMenu.First(e.World)
	if !ok {
		return false
	}
	return components.SettingsMenu.Get(entry).IsOpen
}
