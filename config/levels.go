package config

import "github.com/grayfall/dungeonblob/tilemap"

// LevelsConfig is the ordered campaign plus per-level data keyed by ID.
type LevelsConfig struct {
	FirstLevel string
	Table      map[string]tilemap.LevelConfig
}

// Levels is the global level table
var Levels LevelsConfig

func init() {
	Levels = LevelsConfig{
		FirstLevel: "level_1",
		Table: map[string]tilemap.LevelConfig{
			"level_1": {
				ID:             "level_1",
				Path:           "levels/level_1.tmx",
				CollisionLayer: "collision",
				StartX:         48,
				StartY:         128,
			},
			"level_2": {
				ID:             "level_2",
				Path:           "levels/level_2.tmx",
				CollisionLayer: "collision",
				StartX:         48,
				StartY:         96,
			},
		},
	}
}
