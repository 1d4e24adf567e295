package components

import (
	"github.com/grayfall/dungeonblob/kinematics"
	"github.com/yohamta/donburi"
)

// KinematicData wraps the fixed-step body plus presentation-only state the
// resolver does not care about.
type KinematicData struct {
	Body   kinematics.Body
	Facing float64 // DirectionLeft or DirectionRight, for sprite flip
}

var Kinematic = donburi.NewComponentType[KinematicData]()
