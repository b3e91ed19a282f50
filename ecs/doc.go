// Package ecs spawns rowan levels into a [Donburi] world.
//
// [SpawnLevel] creates one entity per level element, carrying [Transform],
// [Sprite], [DrawLayer], and [LevelMember] components, plus a [Body] backed
// by a resolv collision object for elements with colliders. [DespawnLevel]
// tears the whole level down again by its id.
//
// Both operations publish [LevelSpawned] and [LevelDespawned] events;
// subscribe to them in your ECS systems to react to level transitions.
//
// Usage:
//
//	world := donburi.NewWorld()
//	space := resolv.NewSpace(640, 480, 16, 16)
//	ecs.SpawnLevel(world, space, level)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
