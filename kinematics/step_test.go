package kinematics

import (
	"testing"

	"github.com/grayfall/dungeonblob/tilemap"
)

const stepDT = 1.0 / 120

func testParams() Params {
	return Params{
		Gravity:          1150,
		TerminalVelocity: 1800,
		GroundAccel:      1600,
		AirAccel:         1200,
		GroundMaxSpeed:   325,
		AirMaxSpeed:      275,
		JumpSpeed:        480,
		CoyoteTime:       0.10,
		JumpBufferTime:   0.12,
		GroundProbe:      2,
	}
}

// buildMap makes a width×height map with 16px cells and the listed cells
// solid.
func buildMap(t *testing.T, width, height int, solid ...[2]int) *tilemap.CollisionMap {
	t.Helper()
	cells := make([]int, width*height)
	for _, s := range solid {
		cells[s[1]*width+s[0]] = 1
	}
	m, err := tilemap.BuildCollisionMap(tilemap.GridLayer{
		Name: "collision", CellSize: 16, Width: width, Height: height, Cells: cells,
	})
	if err != nil {
		t.Fatalf("BuildCollisionMap: %v", err)
	}
	return m
}

// floorMap is a 10-wide map with a solid floor row at cy=5 (top face at
// y=80). A 16px-tall body rests on it with its center at y=72.
func floorMap(t *testing.T, extra ...[2]int) *tilemap.CollisionMap {
	t.Helper()
	solid := make([][2]int, 0, 10+len(extra))
	for cx := 0; cx < 10; cx++ {
		solid = append(solid, [2]int{cx, 5})
	}
	solid = append(solid, extra...)
	return buildMap(t, 10, 10, solid...)
}

func TestStepSettlesOnFloor(t *testing.T) {
	m := floorMap(t)
	p := testParams()
	b := NewBody(80, 40, 16, 16)

	landings := 0
	for i := 0; i < 200; i++ {
		if Step(&b, Input{}, m, p, stepDT).Landed {
			landings++
		}
	}

	if !b.Grounded {
		t.Fatal("body never settled on the floor")
	}
	// Flush contact: the bottom edge sits exactly on the floor face.
	if b.Pos.Y != 72 {
		t.Errorf("resting center y = %g, want 72", b.Pos.Y)
	}
	if b.Vel.Y != 0 {
		t.Errorf("resting vertical velocity = %g", b.Vel.Y)
	}
	if landings != 1 {
		t.Errorf("Landed fired %d times, want once", landings)
	}
}

func TestStepGroundedBodyStaysPut(t *testing.T) {
	m := floorMap(t)
	p := testParams()
	b := NewBody(80, 72, 16, 16)
	b.Grounded = true

	for i := 0; i < 300; i++ {
		Step(&b, Input{}, m, p, stepDT)
		if b.Pos.Y != 72 || b.Vel.Y != 0 || !b.Grounded {
			t.Fatalf("step %d: y=%g vy=%g grounded=%v", i, b.Pos.Y, b.Vel.Y, b.Grounded)
		}
	}
}

func TestStepWalkStopsFlushAtWall(t *testing.T) {
	// Wall column at cx=8 above the floor; a body walking right ends flush
	// against its left face at x=128.
	m := floorMap(t, [2]int{8, 4}, [2]int{8, 3})
	p := testParams()
	b := NewBody(40, 72, 16, 16)
	b.Grounded = true

	reachedMax := false
	for i := 0; i < 600; i++ {
		Step(&b, Input{Axis: 1}, m, p, stepDT)
		if b.Vel.X == p.GroundMaxSpeed {
			reachedMax = true
		}
	}

	if !reachedMax {
		t.Error("horizontal speed never ramped to GroundMaxSpeed")
	}
	if b.Pos.X != 120 {
		t.Errorf("final center x = %g, want flush 120", b.Pos.X)
	}
	if b.Vel.X != 0 {
		t.Errorf("velocity against wall = %g, want 0", b.Vel.X)
	}
	if !b.Grounded {
		t.Error("walking into a wall should not unground the body")
	}
}

func TestStepJumpFromGround(t *testing.T) {
	m := floorMap(t)
	p := testParams()
	b := NewBody(80, 72, 16, 16)
	b.Grounded = true

	ev := Step(&b, Input{Jump: true}, m, p, stepDT)
	if !ev.Jumped {
		t.Fatal("grounded jump press did not fire")
	}
	if b.Grounded {
		t.Error("body still grounded after jump")
	}
	if b.Pos.Y >= 72 {
		t.Errorf("body did not move up: y = %g", b.Pos.Y)
	}
	if b.JumpBufferTimer != 0 || b.CoyoteTimer != 0 {
		t.Error("jump must consume both timers")
	}
}

func TestStepCoyoteWindow(t *testing.T) {
	// An airborne body fresh off a ledge carries a full coyote window. The
	// window is 12 steps at 120 Hz and the timer also drains on the press
	// step, so a press after 10 drain steps still jumps and a press after 13
	// does not.
	empty := buildMap(t, 10, 10)
	p := testParams()

	tests := []struct {
		name       string
		drainSteps int
		wantJump   bool
	}{
		{"inside window", 10, true},
		{"outside window", 13, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(80, 40, 16, 16)
			b.CoyoteTimer = p.CoyoteTime

			for i := 0; i < tt.drainSteps; i++ {
				Step(&b, Input{}, empty, p, stepDT)
			}
			ev := Step(&b, Input{Jump: true}, empty, p, stepDT)
			if ev.Jumped != tt.wantJump {
				t.Errorf("Jumped = %v, want %v", ev.Jumped, tt.wantJump)
			}
			if tt.wantJump && b.Vel.Y != -p.JumpSpeed {
				t.Errorf("jump velocity = %g, want %g", b.Vel.Y, -p.JumpSpeed)
			}
		})
	}
}

func TestStepJumpBufferedBeforeLanding(t *testing.T) {
	m := floorMap(t)
	p := testParams()

	// Falling body 2px above the floor; the press lands in the buffer and
	// executes on touchdown, well inside the 0.12s window.
	b := NewBody(80, 70, 16, 16)
	Step(&b, Input{Jump: true}, m, p, stepDT)

	jumped := false
	for i := 0; i < 20 && !jumped; i++ {
		jumped = Step(&b, Input{}, m, p, stepDT).Jumped
	}
	if !jumped {
		t.Fatal("buffered jump never fired after landing")
	}
	if b.Vel.Y != -p.JumpSpeed {
		t.Errorf("jump velocity = %g, want %g", b.Vel.Y, -p.JumpSpeed)
	}
	if b.JumpBufferTimer != 0 {
		t.Error("buffer not consumed by the jump")
	}
}

func TestStepHeadHitKillsUpwardMotionOnly(t *testing.T) {
	// Ceiling row at cy=2 (bottom face y=48): a jump from the floor clamps
	// the head flush at center y=56 without granting grounded state.
	ceiling := make([][2]int, 0, 10)
	for cx := 0; cx < 10; cx++ {
		ceiling = append(ceiling, [2]int{cx, 2})
	}
	m := floorMap(t, ceiling...)
	p := testParams()

	b := NewBody(80, 72, 16, 16)
	b.Grounded = true
	Step(&b, Input{Jump: true}, m, p, stepDT)

	hitHead := false
	for i := 0; i < 200; i++ {
		Step(&b, Input{}, m, p, stepDT)
		if b.Pos.Y == 56 && b.Vel.Y == 0 {
			hitHead = true
			if b.Grounded {
				t.Fatal("ceiling contact must not set grounded")
			}
		}
	}
	if !hitHead {
		t.Fatal("body never clamped flush against the ceiling")
	}
	// Gravity takes over after the clamp and the body lands again.
	if !b.Grounded || b.Pos.Y != 72 {
		t.Errorf("after fallback: y=%g grounded=%v, want 72/true", b.Pos.Y, b.Grounded)
	}
}

func TestStepWalkOffLedgeStartsCoyote(t *testing.T) {
	// Floor only under cx 0..4 (edge at x=80); walking right past the edge
	// drops support, clears grounded, and leaves the coyote window charged.
	solid := make([][2]int, 0, 5)
	for cx := 0; cx < 5; cx++ {
		solid = append(solid, [2]int{cx, 5})
	}
	m := buildMap(t, 10, 10, solid...)
	p := testParams()

	b := NewBody(40, 72, 16, 16)
	b.Grounded = true

	left := false
	for i := 0; i < 600 && !left; i++ {
		Step(&b, Input{Axis: 1}, m, p, stepDT)
		if !b.Grounded {
			left = true
			// The left edge must actually be past the ledge.
			if b.Pos.X-b.Half.X < 80 {
				t.Errorf("ungrounded with feet still over floor: x=%g", b.Pos.X)
			}
			if b.CoyoteTimer <= 0 {
				t.Error("coyote window not charged when leaving the ledge")
			}
		}
	}
	if !left {
		t.Fatal("body never walked off the ledge")
	}
}

func TestStepPanicsOnInvalidBody(t *testing.T) {
	m := buildMap(t, 4, 4)
	b := NewBody(10, 10, 0, 16) // zero width

	defer func() {
		if recover() == nil {
			t.Error("Step accepted a body with non-positive half extents")
		}
	}()
	Step(&b, Input{}, m, testParams(), stepDT)
}

func TestMoveTowardsSymmetry(t *testing.T) {
	tests := []struct {
		current, target, maxDelta, want float64
	}{
		{0, 100, 30, 30},
		{0, -100, 30, -30},
		{90, 100, 30, 100},
		{-90, -100, 30, -100},
		{50, 0, 20, 30},
		{-50, 0, 20, -30},
	}
	for _, tt := range tests {
		if got := moveTowards(tt.current, tt.target, tt.maxDelta); got != tt.want {
			t.Errorf("moveTowards(%g, %g, %g) = %g, want %g",
				tt.current, tt.target, tt.maxDelta, got, tt.want)
		}
	}
}
