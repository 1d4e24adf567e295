package tilemap

import "math"

// Axis selects which component of a displacement a Sweep resolves.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// CellHit identifies the first solid cell a sweep ran into.
type CellHit struct {
	X, Y int
}

// CollisionMap is the immutable per-level solidity lookup built from one
// grid layer: a cell is solid iff its source value was non-zero. A level
// change produces a new map; an existing map is never edited, so concurrent
// readers within a simulation step need no locking.
type CollisionMap struct {
	cellSize int
	width    int
	height   int
	bits     []uint64
}

// BuildCollisionMap derives a CollisionMap from the designated collision
// layer. The only failure mode is ErrUnsupportedDimensions.
func BuildCollisionMap(layer GridLayer) (*CollisionMap, error) {
	if err := layer.Validate(); err != nil {
		return nil, err
	}
	m := &CollisionMap{
		cellSize: layer.CellSize,
		width:    layer.Width,
		height:   layer.Height,
		bits:     make([]uint64, (layer.Width*layer.Height+63)/64),
	}
	for i, v := range layer.Cells {
		if v != 0 {
			m.bits[i>>6] |= 1 << (uint(i) & 63)
		}
	}
	return m, nil
}

func (m *CollisionMap) CellSize() int { return m.cellSize }
func (m *CollisionMap) Width() int    { return m.width }
func (m *CollisionMap) Height() int   { return m.height }

// IsSolid reports whether the cell at (cx, cy) is solid. Everything outside
// the grid is open: the level boundary itself never collides, and falling
// off the world is the resolver's concern, not the map's.
func (m *CollisionMap) IsSolid(cx, cy int) bool {
	if cx < 0 || cy < 0 || cx >= m.width || cy >= m.height {
		return false
	}
	i := cy*m.width + cx
	return m.bits[i>>6]&(1<<(uint(i)&63)) != 0
}

// CellIndex maps a world coordinate to its cell index along one dimension:
// floor(w / cellSize), exact for negative coordinates too.
func (m *CollisionMap) CellIndex(w float64) int {
	return int(math.Floor(w / float64(m.cellSize)))
}

// CellOrigin is the inverse of CellIndex: the world coordinate of a cell's
// low edge.
func (m *CollisionMap) CellOrigin(c int) float64 {
	return float64(c * m.cellSize)
}

// Sweep resolves single-axis AABB movement against the grid. The box is
// centered at (x, y) with the given half extents; disp is the requested
// displacement along axis. It returns the furthest displacement the leading
// edge can travel before overlapping a solid cell, plus that cell, or the
// unclamped displacement and nil when the path is clear.
//
// Edges landing exactly on a cell boundary do not overlap the cell beyond
// it (open interval on every face), so a box can rest flush against a wall
// and slide along a floor without snagging on the tiles underneath. Cells
// are stepped one boundary crossing at a time, so no displacement can
// tunnel through a solid cell.
func (m *CollisionMap) Sweep(x, y, halfW, halfH, disp float64, axis Axis) (float64, *CellHit) {
	if disp == 0 {
		return 0, nil
	}

	cs := float64(m.cellSize)

	// Leading edge along the sweep axis and the body's span across it.
	var edge, lo, hi float64
	if axis == AxisX {
		lo, hi = y-halfH, y+halfH
		if disp > 0 {
			edge = x + halfW
		} else {
			edge = x - halfW
		}
	} else {
		lo, hi = x-halfW, x+halfW
		if disp > 0 {
			edge = y + halfH
		} else {
			edge = y - halfH
		}
	}

	minPerp := int(math.Floor(lo / cs))
	maxPerp := int(math.Ceil(hi/cs)) - 1
	target := edge + disp

	if disp > 0 {
		first := int(math.Ceil(edge / cs))
		last := int(math.Ceil(target/cs)) - 1
		for c := first; c <= last; c++ {
			if hit := m.solidInSpan(c, minPerp, maxPerp, axis); hit != nil {
				return float64(c)*cs - edge, hit
			}
		}
		return disp, nil
	}

	first := int(math.Floor(edge/cs)) - 1
	last := int(math.Floor(target / cs))
	for c := first; c >= last; c-- {
		if hit := m.solidInSpan(c, minPerp, maxPerp, axis); hit != nil {
			return float64(c+1)*cs - edge, hit
		}
	}
	return disp, nil
}

// solidInSpan scans one row or column of cells across the body's
// perpendicular footprint and returns the first solid cell, if any.
func (m *CollisionMap) solidInSpan(c, minPerp, maxPerp int, axis Axis) *CellHit {
	for p := minPerp; p <= maxPerp; p++ {
		cx, cy := c, p
		if axis == AxisY {
			cx, cy = p, c
		}
		if m.IsSolid(cx, cy) {
			return &CellHit{X: cx, Y: cy}
		}
	}
	return nil
}
