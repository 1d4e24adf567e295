package tilemap

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"
)

// SpawnPoint is a player start position in world pixels, parsed from the
// PlayerSpawn object group.
type SpawnPoint struct {
	X, Y float64
}

// TransitionZone is a rectangle that switches to another level when the
// player overlaps it. Target is the destination level identifier, read from
// the object's "target" property.
type TransitionZone struct {
	X, Y, W, H float64
	Target     string
}

// HazardZone is a rectangle that respawns the player at the level spawn.
type HazardZone struct {
	X, Y, W, H float64
}

// LevelFile holds everything extracted from one TMX file: the integer grid
// layers in file order plus the object-group data the runtime cares about.
// It is a pure value; parsing either fully succeeds or returns nothing.
type LevelFile struct {
	Name        string // file stem, doubles as the level identifier
	PixelWidth  int
	PixelHeight int
	Layers      []GridLayer
	Spawns      []SpawnPoint
	Transitions []TransitionZone
	Hazards     []HazardZone
}

// FindLayer returns the named grid layer or ErrMissingLayer.
func (f *LevelFile) FindLayer(name string) (GridLayer, error) {
	for _, l := range f.Layers {
		if l.Name == name {
			return l, nil
		}
	}
	return GridLayer{}, fmt.Errorf("%w: %q not in level %q", ErrMissingLayer, name, f.Name)
}

// ParseLevelFile parses a TMX file into a LevelFile. It takes an fs.FS so
// callers can pass embed.FS (shipped levels) or os.DirFS (tests, modding).
// Same file in, same layers out — the parser keeps no cross-call state.
func ParseLevelFile(fsys fs.FS, tmxPath string) (*LevelFile, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedLevelFile, tmxPath, err)
	}

	// XML with a non-map root decodes as an all-zero map instead of failing,
	// so a fully zero-valued result means the file held no map element at all.
	if levelMap.Width == 0 && levelMap.Height == 0 && levelMap.TileWidth == 0 && len(levelMap.Layers) == 0 {
		return nil, fmt.Errorf("%w: %s: no map element", ErrMalformedLevelFile, tmxPath)
	}

	if levelMap.Width <= 0 || levelMap.Height <= 0 || levelMap.TileWidth <= 0 {
		return nil, fmt.Errorf("%w: map is %dx%d cells of %dpx", ErrUnsupportedDimensions,
			levelMap.Width, levelMap.Height, levelMap.TileWidth)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("%w: non-square %dx%d tiles", ErrUnsupportedDimensions,
			levelMap.TileWidth, levelMap.TileHeight)
	}

	out := &LevelFile{
		Name:        strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		PixelWidth:  levelMap.Width * levelMap.TileWidth,
		PixelHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, layer := range levelMap.Layers {
		if len(layer.Tiles) != levelMap.Width*levelMap.Height {
			return nil, fmt.Errorf("%w: layer %q has %d cells, want %d", ErrUnsupportedDimensions,
				layer.Name, len(layer.Tiles), levelMap.Width*levelMap.Height)
		}
		cells := make([]int, len(layer.Tiles))
		for i, tile := range layer.Tiles {
			if tile.IsNil() {
				continue
			}
			// Tile IDs are zero-based within their tileset; +1 keeps every
			// authored tile non-zero so "non-zero means solid" holds.
			cells[i] = int(tile.ID) + 1
		}
		grid := GridLayer{
			Name:     layer.Name,
			CellSize: levelMap.TileWidth,
			Width:    levelMap.Width,
			Height:   levelMap.Height,
			Cells:    cells,
		}
		if err := grid.Validate(); err != nil {
			return nil, err
		}
		out.Layers = append(out.Layers, grid)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				out.Spawns = append(out.Spawns, SpawnPoint{X: o.X, Y: o.Y})
			}
		case "Transitions":
			for _, o := range og.Objects {
				target := o.Properties.GetString("target")
				if target == "" {
					return nil, fmt.Errorf("%w: transition zone in %q has no target", ErrMalformedLevelFile, out.Name)
				}
				out.Transitions = append(out.Transitions, TransitionZone{
					X: o.X, Y: o.Y, W: o.Width, H: o.Height,
					Target: target,
				})
			}
		case "Hazards":
			for _, o := range og.Objects {
				out.Hazards = append(out.Hazards, HazardZone{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		}
	}

	return out, nil
}
