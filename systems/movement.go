package systems

import (
	"log"
	"time"

	"github.com/grayfall/dungeonblob/components"
	cfg "github.com/grayfall/dungeonblob/config"
	"github.com/grayfall/dungeonblob/kinematics"
	"github.com/grayfall/dungeonblob/tags"
	"github.com/grayfall/dungeonblob/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The simulation runs on a wall-clock accumulator so step rate stays
// decoupled from the engine's tick rate: each tick drains whole fixed
// steps and carries the remainder.
var (
	moveLast time.Time
	moveAcc  float64
)

// ResetMovementClock discards accumulated time. Called on scene start and
// after level loads so a long stall does not replay as a burst of steps.
func ResetMovementClock() {
	moveLast = time.Time{}
	moveAcc = 0
}

// PlayerParams maps the tuning config onto the resolver's parameter set.
func PlayerParams() kinematics.Params {
	p := cfg.Player
	return kinematics.Params{
		Gravity:          p.Gravity,
		TerminalVelocity: p.TerminalVelocity,
		GroundAccel:      p.GroundAccel,
		AirAccel:         p.AirAccel,
		GroundMaxSpeed:   p.GroundMaxSpeed,
		AirMaxSpeed:      p.AirMaxSpeed,
		JumpSpeed:        p.JumpSpeed,
		CoyoteTime:       p.CoyoteTime,
		JumpBufferTime:   p.JumpBufferTime,
		GroundProbe:      p.GroundProbe,
	}
}

// UpdateMovement advances the player body by however many fixed steps the
// elapsed real time covers. The collision map is captured from the registry
// at the start of every step, so a level swap takes effect on a step
// boundary and never mid-resolution.
func UpdateMovement(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	registry := components.Level.Get(levelEntry).Registry

	kin := components.Kinematic.Get(playerEntry)
	ctrl := components.Control.Get(playerEntry)

	now := time.Now()
	if moveLast.IsZero() {
		moveLast = now
	}
	elapsed := now.Sub(moveLast).Seconds()
	moveLast = now
	if elapsed > cfg.Simulation.MaxFrameTime {
		elapsed = cfg.Simulation.MaxFrameTime
	}
	moveAcc += elapsed

	stepDur := cfg.Simulation.StepDuration
	params := PlayerParams()

	steps := 0
	for moveAcc >= stepDur && steps < cfg.Simulation.MaxStepsTick {
		m, err := registry.ActiveMap()
		if err != nil {
			// No level yet; drop the backlog instead of saving it up.
			log.Printf("movement: %v", err)
			moveAcc = 0
			return
		}

		in := kinematics.Input{Axis: ctrl.Axis, Jump: ctrl.JumpPressed}
		ctrl.JumpPressed = false // consumed by the step's jump buffer

		ev := kinematics.Step(&kin.Body, in, m, params, stepDur)
		if ev.Jumped {
			PlaySFX(e, cfg.SoundJump)
		}
		if ev.Landed {
			PlaySFX(e, cfg.SoundLand)
		}

		moveAcc -= stepDur
		steps++
	}
	if steps == cfg.Simulation.MaxStepsTick {
		// Shed whatever the cap kept us from simulating.
		moveAcc = 0
	}

	if ctrl.Axis < 0 {
		kin.Facing = cfg.DirectionLeft
	} else if ctrl.Axis > 0 {
		kin.Facing = cfg.DirectionRight
	}

	syncPlayerObject(playerEntry, kin)
}

// syncPlayerObject mirrors the body AABB into the resolv object used for
// zone overlap queries.
func syncPlayerObject(entry *donburi.Entry, kin *components.KinematicData) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	obj.X = kin.Body.Pos.X - kin.Body.Half.X
	obj.Y = kin.Body.Pos.Y - kin.Body.Half.Y
	obj.Update()
}

// FallRespawnY returns the y coordinate below which the player is treated
// as having fallen out of the level.
func FallRespawnY(m *tilemap.CollisionMap) float64 {
	return float64(m.Height()*m.CellSize()) + 64
}
