package tilemap

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestRegistryBeforeFirstLoad(t *testing.T) {
	r := NewRegistry()
	if _, err := r.ActiveMap(); !errors.Is(err, ErrNoLevelLoaded) {
		t.Errorf("ActiveMap err = %v, want ErrNoLevelLoaded", err)
	}
	if _, err := r.Current(); !errors.Is(err, ErrNoLevelLoaded) {
		t.Errorf("Current err = %v, want ErrNoLevelLoaded", err)
	}
}

func TestRegistryLoadLevel(t *testing.T) {
	gids := make([]int, 4*4)
	gids[3*4+2] = 1
	fsys := fstest.MapFS{
		"level_1.tmx": &fstest.MapFile{Data: []byte(tmxDoc(4, 4, 16,
			csvLayer("collision", 4, 4, gids)+`
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="20" y="30"/>
 </objectgroup>`))},
	}

	r := NewRegistry()
	cfg := LevelConfig{
		ID:             "level_1",
		Path:           "level_1.tmx",
		CollisionLayer: "collision",
		StartX:         99, StartY: 99,
	}
	if err := r.LoadLevel(fsys, cfg); err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	m, err := r.ActiveMap()
	if err != nil {
		t.Fatalf("ActiveMap: %v", err)
	}
	if !m.IsSolid(2, 3) || m.IsSolid(0, 0) {
		t.Error("active map does not match the loaded layer")
	}

	level, err := r.Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	// The authored spawn point wins over the config fallback.
	if level.SpawnX != 20 || level.SpawnY != 30 {
		t.Errorf("spawn = (%g, %g), want (20, 30)", level.SpawnX, level.SpawnY)
	}
	if level.Config.ID != "level_1" {
		t.Errorf("level config ID = %q", level.Config.ID)
	}
}

func TestRegistryLoadLevelSpawnFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"level_1.tmx": &fstest.MapFile{Data: []byte(tmxDoc(4, 4, 16,
			csvLayer("collision", 4, 4, make([]int, 16))))},
	}

	r := NewRegistry()
	err := r.LoadLevel(fsys, LevelConfig{
		ID: "level_1", Path: "level_1.tmx", CollisionLayer: "collision",
		StartX: 48, StartY: 16,
	})
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	level, _ := r.Current()
	if level.SpawnX != 48 || level.SpawnY != 16 {
		t.Errorf("spawn = (%g, %g), want config fallback (48, 16)", level.SpawnX, level.SpawnY)
	}
}

func TestRegistryFailedLoadKeepsPreviousLevel(t *testing.T) {
	gids := make([]int, 4*4)
	gids[0] = 1
	fsys := fstest.MapFS{
		"level_1.tmx": &fstest.MapFile{Data: []byte(tmxDoc(4, 4, 16,
			csvLayer("collision", 4, 4, gids)))},
		// level_2 lacks the collision layer entirely.
		"level_2.tmx": &fstest.MapFile{Data: []byte(tmxDoc(4, 4, 16,
			csvLayer("decor", 4, 4, make([]int, 16))))},
	}

	r := NewRegistry()
	if err := r.LoadLevel(fsys, LevelConfig{
		ID: "level_1", Path: "level_1.tmx", CollisionLayer: "collision",
	}); err != nil {
		t.Fatalf("initial LoadLevel: %v", err)
	}

	err := r.LoadLevel(fsys, LevelConfig{
		ID: "level_2", Path: "level_2.tmx", CollisionLayer: "collision",
	})
	if !errors.Is(err, ErrMissingLayer) {
		t.Fatalf("err = %v, want ErrMissingLayer", err)
	}

	// The failed swap must leave level_1 fully active.
	m, err := r.ActiveMap()
	if err != nil {
		t.Fatalf("ActiveMap after failed load: %v", err)
	}
	if !m.IsSolid(0, 0) {
		t.Error("active map no longer matches level_1")
	}
	level, _ := r.Current()
	if level.Config.ID != "level_1" {
		t.Errorf("current level = %q, want level_1", level.Config.ID)
	}
}

func TestRegistryRejectsIDMismatch(t *testing.T) {
	fsys := fstest.MapFS{
		"level_9.tmx": &fstest.MapFile{Data: []byte(tmxDoc(4, 4, 16,
			csvLayer("collision", 4, 4, make([]int, 16))))},
	}
	r := NewRegistry()
	err := r.LoadLevel(fsys, LevelConfig{
		ID: "level_1", Path: "level_9.tmx", CollisionLayer: "collision",
	})
	if !errors.Is(err, ErrMalformedLevelFile) {
		t.Errorf("err = %v, want ErrMalformedLevelFile", err)
	}
}
