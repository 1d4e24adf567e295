package tilemap

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

// mustBuild builds a map from a width×height grid where the listed cells
// are solid.
func mustBuild(t *testing.T, width, height, cellSize int, solid ...[2]int) *CollisionMap {
	t.Helper()
	cells := make([]int, width*height)
	for _, s := range solid {
		cells[s[1]*width+s[0]] = 1
	}
	m, err := BuildCollisionMap(GridLayer{
		Name:     "collision",
		CellSize: cellSize,
		Width:    width,
		Height:   height,
		Cells:    cells,
	})
	if err != nil {
		t.Fatalf("BuildCollisionMap: %v", err)
	}
	return m
}

func TestBuildCollisionMapRejectsDimensions(t *testing.T) {
	tests := []struct {
		name  string
		layer GridLayer
	}{
		{"zero cell size", GridLayer{CellSize: 0, Width: 4, Height: 4, Cells: make([]int, 16)}},
		{"negative cell size", GridLayer{CellSize: -16, Width: 4, Height: 4, Cells: make([]int, 16)}},
		{"zero width", GridLayer{CellSize: 16, Width: 0, Height: 4}},
		{"zero height", GridLayer{CellSize: 16, Width: 4, Height: 0}},
		{"cell count mismatch", GridLayer{CellSize: 16, Width: 4, Height: 4, Cells: make([]int, 15)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BuildCollisionMap(tt.layer); !errors.Is(err, ErrUnsupportedDimensions) {
				t.Errorf("got %v, want ErrUnsupportedDimensions", err)
			}
		})
	}
}

func TestSolidityMatchesSource(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const width, height = 12, 9

	cells := make([]int, width*height)
	for i := range cells {
		if rng.Intn(3) == 0 {
			cells[i] = rng.Intn(50) - 25 // negative markers count as solid too
		}
	}
	layer := GridLayer{Name: "collision", CellSize: 16, Width: width, Height: height, Cells: cells}
	m, err := BuildCollisionMap(layer)
	if err != nil {
		t.Fatalf("BuildCollisionMap: %v", err)
	}

	for cy := 0; cy < height; cy++ {
		for cx := 0; cx < width; cx++ {
			want := cells[cy*width+cx] != 0
			if got := m.IsSolid(cx, cy); got != want {
				t.Errorf("IsSolid(%d,%d) = %v, source value %d", cx, cy, got, cells[cy*width+cx])
			}
		}
	}

	outside := [][2]int{{-1, 0}, {0, -1}, {width, 0}, {0, height}, {-5, -5}, {100, 100}}
	for _, c := range outside {
		if m.IsSolid(c[0], c[1]) {
			t.Errorf("IsSolid(%d,%d) outside grid should be false", c[0], c[1])
		}
	}
}

func TestCellIndexRoundTrip(t *testing.T) {
	m := mustBuild(t, 4, 4, 16)
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 500; i++ {
		w := rng.Float64()*640 - 160 // include negative world space
		c := m.CellIndex(w)
		if want := int(math.Floor(w / 16)); c != want {
			t.Fatalf("CellIndex(%g) = %d, want %d", w, c, want)
		}
		// Converting back to the cell origin and re-deriving the index must
		// be idempotent.
		if again := m.CellIndex(m.CellOrigin(c)); again != c {
			t.Fatalf("CellIndex(CellOrigin(%d)) = %d", c, again)
		}
	}
}

func TestSweepStopsFlushAgainstWall(t *testing.T) {
	// Vertical wall column at cx=5 spanning the body's rows.
	m := mustBuild(t, 10, 10, 16, [2]int{5, 2}, [2]int{5, 3}, [2]int{5, 4})

	// Body centered at x=40 with half width 8: right edge at 48, wall face
	// at 80. Requesting 100px must clamp to exactly 32.
	moved, hit := m.Sweep(40, 56, 8, 8, 100, AxisX)
	if hit == nil || hit.X != 5 {
		t.Fatalf("expected hit on column 5, got %+v", hit)
	}
	if moved != 32 {
		t.Fatalf("clamped displacement = %g, want 32", moved)
	}

	// Flush against the wall, a further sweep moves zero but still reports
	// the contact.
	moved, hit = m.Sweep(40+32, 56, 8, 8, 10, AxisX)
	if hit == nil || moved != 0 {
		t.Fatalf("flush sweep = (%g, %+v), want (0, hit)", moved, hit)
	}

	// The flush edge is an open interval: sliding vertically along the wall
	// must not collide with it.
	moved, hit = m.Sweep(40+32, 56, 8, 8, -20, AxisY)
	if hit != nil {
		t.Fatalf("vertical slide along wall hit %+v", hit)
	}
	if moved != -20 {
		t.Fatalf("vertical slide moved %g, want -20", moved)
	}
}

func TestSweepOpenPathUnclamped(t *testing.T) {
	m := mustBuild(t, 10, 10, 16)
	for _, disp := range []float64{3.5, -3.5, 64, -64, 0.01} {
		if moved, hit := m.Sweep(80, 80, 6, 10, disp, AxisX); moved != disp || hit != nil {
			t.Errorf("open sweep(%g) = (%g, %+v)", disp, moved, hit)
		}
	}
}

func TestSweepMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(23))

	for i := 0; i < 200; i++ {
		width, height := 6+rng.Intn(10), 6+rng.Intn(10)
		var solid [][2]int
		for cy := 0; cy < height; cy++ {
			for cx := 0; cx < width; cx++ {
				if rng.Intn(4) == 0 {
					solid = append(solid, [2]int{cx, cy})
				}
			}
		}
		m := mustBuild(t, width, height, 16, solid...)

		x := rng.Float64() * float64(width*16)
		y := rng.Float64() * float64(height*16)
		half := 2 + rng.Float64()*10
		axis := AxisX
		if rng.Intn(2) == 0 {
			axis = AxisY
		}
		sign := 1.0
		if rng.Intn(2) == 0 {
			sign = -1.0
		}

		small := sign * rng.Float64() * 40
		large := small + sign*rng.Float64()*40

		movedSmall, _ := m.Sweep(x, y, half, half, small, axis)
		movedLarge, _ := m.Sweep(x, y, half, half, large, axis)

		if sign > 0 && movedLarge < movedSmall {
			t.Fatalf("sample %d: sweep(%g)=%g < sweep(%g)=%g", i, large, movedLarge, small, movedSmall)
		}
		if sign < 0 && movedLarge > movedSmall {
			t.Fatalf("sample %d: sweep(%g)=%g > sweep(%g)=%g", i, large, movedLarge, small, movedSmall)
		}
	}
}

func TestSweepNeverTunnelsIntoWall(t *testing.T) {
	const cellSize = 16
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		width, height := 20, 20
		wallX := 4 + rng.Intn(12)
		var solid [][2]int
		for cy := 0; cy < height; cy++ {
			solid = append(solid, [2]int{wallX, cy})
		}
		m := mustBuild(t, width, height, cellSize, solid...)

		halfW := 1 + rng.Float64()*7
		wallFace := float64(wallX * cellSize)
		// Start with the right edge strictly left of the wall face.
		gap := rng.Float64() * cellSize
		x := wallFace - gap - halfW
		y := rng.Float64() * float64(height*cellSize)
		disp := rng.Float64() * cellSize // single-step displacement ≤ one cell

		moved, hit := m.Sweep(x, y, halfW, 4, disp, AxisX)
		edge := x + halfW + moved

		if edge > wallFace+1e-9 {
			t.Fatalf("sample %d: edge %g past wall face %g (disp %g, gap %g)", i, edge, wallFace, disp, gap)
		}
		if hit == nil && disp > gap {
			t.Fatalf("sample %d: displacement %g over gap %g reported no hit", i, disp, gap)
		}
	}
}
