package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Gravity          float64 // px/s^2
	TerminalVelocity float64 // px/s, max downward speed
	GroundAccel      float64 // px/s^2
	AirAccel         float64 // px/s^2
	GroundMaxSpeed   float64 // px/s
	AirMaxSpeed      float64 // px/s
	JumpSpeed        float64 // px/s, applied upward on jump

	// Jump feel windows, in seconds
	CoyoteTime     float64
	JumpBufferTime float64

	// Ground support probe depth in pixels
	GroundProbe float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// SimulationConfig contains fixed-step simulation configuration
type SimulationConfig struct {
	StepDuration float64 // seconds per fixed step
	MaxFrameTime float64 // clamp for a single frame's elapsed time
	MaxStepsTick int     // hard cap on steps drained per engine tick
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // how fast the camera closes on the player (0.0-1.0)
}

// TransitionConfig contains level transition fade configuration
type TransitionConfig struct {
	FadeOutSeconds float64
	FadeInSeconds  float64
	FadeColor      color.RGBA
}

// HUDConfig contains HUD text configuration values
type HUDConfig struct {
	FontSize  float64
	TextColor color.RGBA
	Margin    float64
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// SettingsMenuConfig contains settings overlay configuration values
type SettingsMenuConfig struct {
	VolumeSteps  []float64
	ItemHeight   float64
	ItemGap      float64
	TitleY       float64
	ItemsStartY  float64
	LabelX       float64
	ValueX       float64
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextNormal   color.RGBA
	TextSelected color.RGBA
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool   // Skip menu and go directly to game
	StartLevel string // Override the first level loaded
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Simulation SimulationConfig
var Camera CameraConfig
var Transition TransitionConfig
var HUD HUDConfig
var Pause PauseConfig
var SettingsMenu SettingsMenuConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Player = PlayerConfig{
		Gravity:          1150,
		TerminalVelocity: 1800,
		GroundAccel:      1600,
		AirAccel:         1200,
		GroundMaxSpeed:   325,
		AirMaxSpeed:      275,
		JumpSpeed:        480,

		CoyoteTime:     0.10,
		JumpBufferTime: 0.12,

		GroundProbe: 2,

		CollisionWidth:  12,
		CollisionHeight: 14,
	}

	Simulation = SimulationConfig{
		StepDuration: 1.0 / 120.0,
		MaxFrameTime: 0.25, // a stall never turns into a catch-up avalanche
		MaxStepsTick: 30,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.12,
	}

	Transition = TransitionConfig{
		FadeOutSeconds: 0.35,
		FadeInSeconds:  0.35,
		FadeColor:      Black,
	}

	HUD = HUDConfig{
		FontSize:  14,
		TextColor: White,
		Margin:    8,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Restart Level", "Settings", "Exit"},
	}

	SettingsMenu = SettingsMenuConfig{
		VolumeSteps:  []float64{0, 0.25, 0.5, 0.75, 1.0},
		ItemHeight:   24,
		ItemGap:      10,
		TitleY:       70,
		ItemsStartY:  120,
		LabelX:       200,
		ValueX:       400,
		OverlayColor: BlackOverlay,
		TitleColor:   Orange,
		TextNormal:   White,
		TextSelected: BrightOrange,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            70,
		MenuStartY:        150,
		MenuItemHeight:    30,
		MenuItemGap:       15,
	}

	Debug = DebugConfig{}
}
