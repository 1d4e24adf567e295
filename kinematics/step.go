package kinematics

import (
	"github.com/grayfall/dungeonblob/tilemap"
)

// Step advances one body by one fixed time step against the collision map:
// input and gravity integrate into velocity, then the displacement is
// resolved one axis at a time — x first, then y from the updated x — so the
// body slides along surfaces instead of catching on corners. dt is the
// fixed step duration in seconds.
//
// Step is total over valid states; it panics on a body that fails Validate,
// since that can only be caused by a bug upstream.
func Step(b *Body, in Input, m *tilemap.CollisionMap, p Params, dt float64) Events {
	if err := b.Validate(); err != nil {
		panic("kinematics: " + err.Error())
	}

	// Timers. A fresh press recharges the buffer; otherwise both windows
	// drain toward zero.
	if in.Jump {
		b.JumpBufferTimer = p.JumpBufferTime
	} else if b.JumpBufferTimer > 0 {
		b.JumpBufferTimer = maxFloat(0, b.JumpBufferTimer-dt)
	}
	if !b.Grounded && b.CoyoteTimer > 0 {
		b.CoyoteTimer = maxFloat(0, b.CoyoteTimer-dt)
	}

	// Horizontal control: ramp toward the target speed rather than setting
	// it, with separate ground/air rates.
	axis := clampFloat(in.Axis, -1, 1)
	accel, maxSpeed := p.GroundAccel, p.GroundMaxSpeed
	if !b.Grounded {
		accel, maxSpeed = p.AirAccel, p.AirMaxSpeed
	}
	b.Vel.X = moveTowards(b.Vel.X, axis*maxSpeed, accel*dt)

	if !b.Grounded {
		b.Vel.Y += p.Gravity * dt
		if b.Vel.Y > p.TerminalVelocity {
			b.Vel.Y = p.TerminalVelocity
		}
	}

	var ev Events

	// A buffered jump fires while grounded or within the coyote window, and
	// consumes both timers.
	if b.JumpBufferTimer > 0 && (b.Grounded || b.CoyoteTimer > 0) {
		b.Vel.Y = -p.JumpSpeed
		b.Grounded = false
		b.CoyoteTimer = 0
		b.JumpBufferTimer = 0
		ev.Jumped = true
	}

	// Horizontal resolution.
	dx := b.Vel.X * dt
	moved, hit := m.Sweep(b.Pos.X, b.Pos.Y, b.Half.X, b.Half.Y, dx, tilemap.AxisX)
	b.Pos.X += moved
	if hit != nil {
		b.Vel.X = 0
	}

	// Vertical resolution from the updated x position.
	dy := b.Vel.Y * dt
	wasGrounded := b.Grounded
	if dy != 0 {
		moved, hit = m.Sweep(b.Pos.X, b.Pos.Y, b.Half.X, b.Half.Y, dy, tilemap.AxisY)
		b.Pos.Y += moved
		switch {
		case hit != nil && dy > 0:
			b.Vel.Y = 0
			b.Grounded = true
			if !wasGrounded {
				ev.Landed = true
			}
		case hit != nil:
			// Head hit: kill upward motion, grounded state untouched.
			b.Vel.Y = 0
		case dy > 0:
			b.Grounded = false
		}
	}

	// A grounded body that did not move down still needs support under its
	// feet; walking off a ledge starts the coyote window here.
	if b.Grounded {
		if _, probe := m.Sweep(b.Pos.X, b.Pos.Y, b.Half.X, b.Half.Y, p.GroundProbe, tilemap.AxisY); probe == nil {
			b.Grounded = false
		}
	}
	if b.Grounded {
		b.CoyoteTimer = p.CoyoteTime
	}

	return ev
}

// moveTowards shifts current toward target by at most maxDelta, keeping
// acceleration and deceleration symmetric.
func moveTowards(current, target, maxDelta float64) float64 {
	delta := target - current
	if delta > maxDelta {
		return current + maxDelta
	}
	if delta < -maxDelta {
		return current - maxDelta
	}
	return target
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
