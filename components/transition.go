package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TransitionPhase tracks the fade state machine for level changes and
// hazard respawns.
type TransitionPhase int

const (
	TransitionIdle TransitionPhase = iota
	TransitionFadeOut
	TransitionFadeIn
)

// TransitionData is the singleton fade overlay state. Target carries the
// level ID to load at blackout; Respawn means the blackout resets the
// player to the current level's spawn instead of loading a new level.
type TransitionData struct {
	Phase   TransitionPhase
	Fade    *gween.Tween
	Alpha   float32
	Target  string
	Respawn bool
}

// Active reports whether a fade is in flight; gameplay input is ignored
// while it is.
func (d *TransitionData) Active() bool {
	return d.Phase != TransitionIdle
}

var Transition = donburi.NewComponentType[TransitionData]()
