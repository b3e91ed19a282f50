package ecs

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/rowan"
)

// TransformData places an element in the world.
type TransformData struct {
	Position rowan.Vec2
	Rotation float64
	Scale    rowan.Vec2
}

// SpriteData references the element's atlas region: the asset key's string
// form plus an index into its layout. Index is -1 for plain images.
type SpriteData struct {
	Key   string
	Index int
}

// DrawLayerData orders painting. Z is Layer plus a fractional offset derived
// from spawn order, so elements sharing a layer keep a stable relative order
// without colliding with the next layer up.
type DrawLayerData struct {
	Layer int
	Z     float64
}

// BodyData owns the element's collision object for as long as the entity
// lives in the space. Sensor bodies detect overlaps without blocking
// movement; Filters are the tags the body tests against.
type BodyData struct {
	Object  *resolv.Object
	Sensor  bool
	Filters []string
}

// LevelMemberData tags an entity with the level that spawned it, so the whole
// level can be torn down by id.
type LevelMemberData struct {
	ID rowan.LevelID
}

var (
	Transform   = donburi.NewComponentType[TransformData]()
	Sprite      = donburi.NewComponentType[SpriteData]()
	DrawLayer   = donburi.NewComponentType[DrawLayerData]()
	Body        = donburi.NewComponentType[BodyData]()
	LevelMember = donburi.NewComponentType[LevelMemberData]()
)
