package systems

import (
	"log"

	"github.com/grayfall/dungeonblob/components"
	cfg "github.com/grayfall/dungeonblob/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// StartTransition begins a fade to black. At blackout the screen either
// switches to the target level or respawns the player in the current one,
// then fades back in. A fade already in flight wins.
func StartTransition(e *ecs.ECS, target string, respawn bool) {
	t := getOrCreateTransition(e)
	if t.Active() {
		return
	}
	t.Phase = components.TransitionFadeOut
	t.Fade = gween.New(0, 1, float32(cfg.Transition.FadeOutSeconds), ease.Linear)
	t.Target = target
	t.Respawn = respawn
}

// UpdateTransition drives the fade state machine.
func UpdateTransition(e *ecs.ECS) {
	t := getOrCreateTransition(e)
	if t.Phase == components.TransitionIdle {
		return
	}

	dt := float32(1.0 / float64(ebiten.TPS()))
	alpha, done := t.Fade.Update(dt)
	t.Alpha = alpha
	if !done {
		return
	}

	switch t.Phase {
	case components.TransitionFadeOut:
		// Blackout: the world is invisible, safe to rearrange.
		if t.Respawn {
			respawnAtLevelStart(e)
		} else if err := SwitchLevel(e, t.Target); err != nil {
			// The previous level is still fully loaded; abort the switch
			// and fade back into it.
			log.Printf("level transition to %q failed: %v", t.Target, err)
		}
		t.Phase = components.TransitionFadeIn
		t.Fade = gween.New(1, 0, float32(cfg.Transition.FadeInSeconds), ease.Linear)
	case components.TransitionFadeIn:
		t.Phase = components.TransitionIdle
		t.Alpha = 0
		t.Fade = nil
		t.Target = ""
		t.Respawn = false
	}
}

// DrawTransition renders the fade overlay above the world.
func DrawTransition(e *ecs.ECS, screen *ebiten.Image) {
	t := getTransition(e)
	if t == nil || t.Alpha <= 0 {
		return
	}
	c := cfg.Transition.FadeColor
	c.A = uint8(t.Alpha * 255)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), c, false)
}

// getTransition returns the singleton transition state, or nil before the
// scene created it.
func getTransition(e *ecs.ECS) *components.TransitionData {
	entry, ok := components.Transition.First(e.World)
	if !ok {
		return nil
	}
	return components.Transition.Get(entry)
}

func getOrCreateTransition(e *ecs.ECS) *components.TransitionData {
	entry, ok := components.Transition.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Transition))
	}
	return components.Transition.Get(entry)
}
