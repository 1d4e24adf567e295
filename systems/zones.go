package systems

import (
	"github.com/grayfall/dungeonblob/components"
	cfg "github.com/grayfall/dungeonblob/config"
	"github.com/grayfall/dungeonblob/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateZones checks the player against trigger regions. Transitions win
// over hazards when both overlap on the same frame; either one starts a
// fade, and nothing re-triggers while a fade is in flight.
func UpdateZones(e *ecs.ECS) {
	t := getTransition(e)
	if t == nil || t.Active() {
		return
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)
	if playerObj.Object == nil {
		return
	}

	if check := playerObj.Check(0, 0, tags.ResolvTransition); check != nil {
		for _, obj := range check.ObjectsByTags(tags.ResolvTransition) {
			zoneEntry, ok := obj.Data.(*donburi.Entry)
			if !ok || !zoneEntry.Valid() {
				continue
			}
			zone := components.Zone.Get(zoneEntry)
			if zone.Target == "" {
				continue
			}
			PlaySFX(e, cfg.SoundTransition)
			StartTransition(e, zone.Target, false)
			return
		}
	}

	if check := playerObj.Check(0, 0, tags.ResolvHazard); check != nil {
		if len(check.ObjectsByTags(tags.ResolvHazard)) > 0 {
			PlaySFX(e, cfg.SoundHazard)
			StartTransition(e, "", true)
			return
		}
	}

	// Falling past the level bottom counts as a hazard.
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	registry := components.Level.Get(levelEntry).Registry
	if m, err := registry.ActiveMap(); err == nil {
		kin := components.Kinematic.Get(playerEntry)
		if kin.Body.Pos.Y > FallRespawnY(m) {
			PlaySFX(e, cfg.SoundHazard)
			StartTransition(e, "", true)
		}
	}
}
