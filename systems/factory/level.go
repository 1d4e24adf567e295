package factory

import (
	"io/fs"

	"github.com/grayfall/dungeonblob/archetypes"
	"github.com/grayfall/dungeonblob/components"
	"github.com/grayfall/dungeonblob/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the singleton level entity owning the registry and the
// filesystem level files are read from.
func CreateLevel(ecs *ecs.ECS, files fs.FS) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Registry: tilemap.NewRegistry(),
		Files:    files,
	})
	return level
}
