package components

import "github.com/yohamta/donburi"

// ZoneKind distinguishes the trigger regions authored in level files.
type ZoneKind int

const (
	ZoneTransition ZoneKind = iota
	ZoneHazard
)

// ZoneData is attached to trigger entities. Target is the destination
// level ID for transition zones, unused for hazards.
type ZoneData struct {
	Kind   ZoneKind
	Target string
}

var Zone = donburi.NewComponentType[ZoneData]()
