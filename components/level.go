package components

import (
	"io/fs"

	"github.com/grayfall/dungeonblob/tilemap"
	"github.com/yohamta/donburi"
)

// LevelData is the singleton level state: the registry owning the active
// collision map and the filesystem levels are read from.
type LevelData struct {
	Registry *tilemap.Registry
	Files    fs.FS
}

var Level = donburi.NewComponentType[LevelData]()
