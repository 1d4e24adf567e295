package config

import "github.com/yohamta/donburi/ecs"

// ECS layers for update and render ordering
const (
	Default ecs.LayerID = iota
)
