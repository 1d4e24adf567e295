package tags

import "github.com/yohamta/donburi"

var (
	Player         = donburi.NewTag().SetName("Player")
	TransitionZone = donburi.NewTag().SetName("TransitionZone")
	HazardZone     = donburi.NewTag().SetName("HazardZone")
)

// Resolv tags for overlap queries
const (
	ResolvPlayer     = "player"
	ResolvTransition = "transition"
	ResolvHazard     = "hazard"
)
