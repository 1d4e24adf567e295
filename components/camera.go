package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // center of the view in world pixels
}

var Camera = donburi.NewComponentType[CameraData]()
