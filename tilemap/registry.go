package tilemap

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrNoLevelLoaded is returned by ActiveMap/Current before the first
// successful LoadLevel. It is a usage error, fatal to the caller's current
// operation but not to the process.
var ErrNoLevelLoaded = errors.New("no level loaded")

// LevelConfig names a level and where to find it. Owned by the Registry;
// read-only to everyone else.
type LevelConfig struct {
	ID             string  // must match the file stem of Path
	Path           string  // TMX path within the level filesystem
	CollisionLayer string  // designated collision layer name
	StartX, StartY float64 // fallback spawn when the file defines none
}

// Level is the active level snapshot: its config, parsed file data, and the
// resolved spawn point.
type Level struct {
	Config LevelConfig
	File   *LevelFile
	SpawnX float64
	SpawnY float64
}

// Registry owns the one active CollisionMap and level at a time. It is a
// single-writer resource: all mutation happens on the simulation goroutine,
// and the movement resolver captures the active map once at the start of a
// fixed step, so a load taking effect mid-frame is simply observed from the
// next step on. A load that fails leaves the previous level fully active.
type Registry struct {
	active *CollisionMap
	level  *Level
}

func NewRegistry() *Registry {
	return &Registry{}
}

// LoadLevel parses the configured file, builds a fresh CollisionMap, and
// swaps it in as active. On any error the registry is untouched: the map is
// never partially rebuilt.
func (r *Registry) LoadLevel(fsys fs.FS, cfg LevelConfig) error {
	file, err := ParseLevelFile(fsys, cfg.Path)
	if err != nil {
		return err
	}
	if file.Name != cfg.ID {
		return fmt.Errorf("%w: file is level %q, config wants %q", ErrMalformedLevelFile, file.Name, cfg.ID)
	}

	layer, err := file.FindLayer(cfg.CollisionLayer)
	if err != nil {
		return err
	}
	m, err := BuildCollisionMap(layer)
	if err != nil {
		return err
	}

	level := &Level{Config: cfg, File: file, SpawnX: cfg.StartX, SpawnY: cfg.StartY}
	if len(file.Spawns) > 0 {
		level.SpawnX = file.Spawns[0].X
		level.SpawnY = file.Spawns[0].Y
	}

	// Everything succeeded; the previous map is discarded in one assignment.
	r.active = m
	r.level = level
	return nil
}

// ActiveMap returns the current CollisionMap, or ErrNoLevelLoaded before
// the first successful load.
func (r *Registry) ActiveMap() (*CollisionMap, error) {
	if r.active == nil {
		return nil, ErrNoLevelLoaded
	}
	return r.active, nil
}

// Current returns the active level snapshot under the same guard.
func (r *Registry) Current() (*Level, error) {
	if r.level == nil {
		return nil, ErrNoLevelLoaded
	}
	return r.level, nil
}
