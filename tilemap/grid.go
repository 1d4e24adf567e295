// Package tilemap turns externally authored TMX levels into queryable
// collision data. It has no dependencies on ebitengine, donburi, or resolv —
// pure data only, so both the game and the server-side tests can import it.
package tilemap

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by level loading. Callers match them with errors.Is;
// every failure path wraps one of these with context.
var (
	// ErrMalformedLevelFile means the source file could not be parsed at all,
	// or its identifiers do not match the configured level.
	ErrMalformedLevelFile = errors.New("malformed level file")

	// ErrMissingLayer means the designated collision layer is absent.
	ErrMissingLayer = errors.New("missing layer")

	// ErrUnsupportedDimensions covers non-positive cell size or grid
	// dimensions and cell arrays whose length disagrees with width×height.
	ErrUnsupportedDimensions = errors.New("unsupported dimensions")
)

// GridLayer is one named integer-valued layer extracted from a level file.
// Cells are row-major, length Width*Height. A zero value marks open space;
// anything non-zero is an authored tile.
type GridLayer struct {
	Name     string
	CellSize int // square cell edge, pixels
	Width    int // cell count
	Height   int // cell count
	Cells    []int
}

// Validate reports ErrUnsupportedDimensions for any structurally unusable
// layer. A layer that validates can always be built into a CollisionMap.
func (l GridLayer) Validate() error {
	if l.CellSize <= 0 {
		return fmt.Errorf("%w: layer %q cell size %d", ErrUnsupportedDimensions, l.Name, l.CellSize)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: layer %q is %dx%d cells", ErrUnsupportedDimensions, l.Name, l.Width, l.Height)
	}
	if len(l.Cells) != l.Width*l.Height {
		return fmt.Errorf("%w: layer %q has %d cells, want %d", ErrUnsupportedDimensions, l.Name, len(l.Cells), l.Width*l.Height)
	}
	return nil
}

// Value returns the cell value at (cx, cy). Out-of-range coordinates are
// rejected, never clamped.
func (l GridLayer) Value(cx, cy int) (int, error) {
	if cx < 0 || cy < 0 || cx >= l.Width || cy >= l.Height {
		return 0, fmt.Errorf("cell (%d,%d) outside %dx%d layer %q", cx, cy, l.Width, l.Height, l.Name)
	}
	return l.Cells[cy*l.Width+cx], nil
}
