// Package rowan provides input mapping, sprite sheet geometry, and level
// tooling for [Ebitengine] games.
//
// Rowan is a companion library to willow: where willow owns the scene graph
// and rendering, rowan owns the data that feeds it: which physical buttons
// trigger which logical actions, how a sheet image divides into sprites, and
// what a level file spawns.
//
// # Input mapping
//
// A [Button] unifies keyboard keys, mouse buttons, and gamepad buttons behind
// one comparable value. A [ButtonMapping] binds caller-defined actions to
// buttons and answers pressed/just-pressed/just-released queries against an
// [InputState] snapshot:
//
//	type Action int
//	const (
//		Jump Action = iota
//		Fire
//	)
//
//	m := rowan.NewButtonMapping[Action]()
//	m.InsertMapping(rowan.NewMappedButtons(Jump, rowan.KeyButton(ebiten.KeySpace)))
//	m.InsertMapping(rowan.NewMappedButtons(Fire, rowan.MouseButton(ebiten.MouseButtonLeft)))
//
//	in := rowan.NewInputState()
//	// each frame:
//	in.Poll()
//	if m.JustPressed(Jump, in) { ... }
//
// Bindings persist to YAML with [MarshalBindings] and [UnmarshalBindings] so
// players can customize and keep their keys.
//
// # Sprite sheets and atlas layouts
//
// A [SpriteSheet] describes how one image partitions into sub-rectangles,
// either as a uniform grid or an explicit list. [SpriteSheet.AtlasLayout]
// flattens the sheet into an ordered [AtlasLayout] whose region order is the
// sprite-index contract consumed by sprite references. Sheets load from
// ".sheet" YAML files next to their image.
//
// # Levels
//
// A [Level] is a serializable list of static elements (sprite key, atlas
// index, transform, optional collider) plus adjacency for preloading.
// The ecs package spawns levels into a [Donburi] world with [resolv] collision
// bodies; the editor package is an in-game level and sheet editor built on the
// same types.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
// [resolv]: https://github.com/solarlune/resolv
package rowan
