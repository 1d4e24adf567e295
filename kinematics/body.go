// Package kinematics advances axis-aligned platformer bodies against a
// collision map in fixed time steps. It owns no engine state; the ECS layer
// feeds it input samples and a map reference each step.
package kinematics

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector in world pixels. +Y points down, matching screen
// space, so gravity is positive and jump velocity is negative.
type Vec2 struct {
	X, Y float64
}

// Body is the kinematic state of one entity. Pos is the center of the AABB.
// Bodies are created with zero velocity and Grounded false, and are mutated
// only by Step.
type Body struct {
	Pos  Vec2
	Vel  Vec2 // pixels per second
	Half Vec2 // half extents, both positive

	Grounded bool

	// CoyoteTimer counts down after leaving the ground; while positive a
	// jump still registers. JumpBufferTimer counts down after a jump press;
	// while positive, touching ground executes the jump.
	CoyoteTimer     float64
	JumpBufferTimer float64
}

// NewBody returns a body of the given pixel size centered at (x, y).
func NewBody(x, y, width, height float64) Body {
	return Body{
		Pos:  Vec2{X: x, Y: y},
		Half: Vec2{X: width / 2, Y: height / 2},
	}
}

// Validate rejects states the resolver is not defined over: non-positive
// half extents or non-finite position/velocity. Such states are programming
// errors caught at spawn and at step entry, never "handled" mid-simulation.
func (b *Body) Validate() error {
	if b.Half.X <= 0 || b.Half.Y <= 0 {
		return fmt.Errorf("non-positive half extents (%g, %g)", b.Half.X, b.Half.Y)
	}
	for _, v := range [...]float64{b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite kinematic state pos=(%g, %g) vel=(%g, %g)",
				b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y)
		}
	}
	return nil
}

// Input is one step's worth of control intent. Axis is the horizontal input
// in [-1, 1]; Jump is the press edge, not the held state. The resolver does
// not care which device produced it.
type Input struct {
	Axis float64
	Jump bool
}

// Params are the gameplay tuning constants for one body. Velocities are
// pixels per second, accelerations pixels per second squared, windows in
// seconds.
type Params struct {
	Gravity          float64
	TerminalVelocity float64 // max downward speed
	GroundAccel      float64
	AirAccel         float64
	GroundMaxSpeed   float64
	AirMaxSpeed      float64
	JumpSpeed        float64 // launch speed, applied upward
	CoyoteTime       float64
	JumpBufferTime   float64
	GroundProbe      float64 // pixels checked below the feet for support
}

// Events reports what happened during a step, for collaborators that react
// to discrete moments (audio, effects). The resolver never calls into them.
type Events struct {
	Jumped bool
	Landed bool
}
