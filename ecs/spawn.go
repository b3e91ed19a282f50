package ecs

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/rowan"
)

// LevelEvent reports a level transition: which level and how many entities
// it gained or lost.
type LevelEvent struct {
	ID    rowan.LevelID
	Count int
}

// Event types published by SpawnLevel and DespawnLevel. Drain them with
// ProcessEvents once per frame.
var (
	LevelSpawned   = events.NewEventType[LevelEvent]()
	LevelDespawned = events.NewEventType[LevelEvent]()
)

// TagSolid marks bodies that block movement. Sensor bodies never carry it,
// so hosts can filter a space check to solid geometry only.
const TagSolid = "solid"

// SpawnLevel creates one entity per level element and returns them in
// element order. Z spreads the element's fraction of 0.1 across its draw
// layer, so layer n stays strictly below layer n+1. Collision objects are
// centered on the element position, tagged with the collider's member tags
// plus TagSolid unless the collider is a sensor, and added to space when it
// is non-nil.
func SpawnLevel(w donburi.World, space *resolv.Space, l *rowan.Level) []donburi.Entity {
	n := len(l.Elements)
	entities := make([]donburi.Entity, 0, n)
	for i, e := range l.Elements {
		comps := []donburi.IComponentType{Transform, Sprite, DrawLayer, LevelMember}
		if e.Collider != nil {
			comps = append(comps, Body)
		}
		entity := w.Create(comps...)
		entry := w.Entry(entity)

		scale := rowan.Vec2{X: 1, Y: 1}
		if e.Scale != nil {
			scale = *e.Scale
		}
		Transform.SetValue(entry, TransformData{
			Position: e.Position,
			Rotation: e.Rotation,
			Scale:    scale,
		})

		index := -1
		if e.SpriteIndex != nil {
			index = *e.SpriteIndex
		}
		Sprite.SetValue(entry, SpriteData{Key: e.Sprite, Index: index})

		DrawLayer.SetValue(entry, DrawLayerData{
			Layer: e.DrawLayer,
			Z:     float64(e.DrawLayer) + float64(i)/float64(n)*0.1,
		})

		LevelMember.SetValue(entry, LevelMemberData{ID: l.ID})

		if c := e.Collider; c != nil {
			tags := append([]string(nil), c.Members...)
			if !c.Sensor {
				tags = append(tags, TagSolid)
			}
			obj := resolv.NewObject(
				e.Position.X-c.Width/2, e.Position.Y-c.Height/2,
				c.Width, c.Height,
				tags...,
			)
			if space != nil {
				space.Add(obj)
			}
			Body.SetValue(entry, BodyData{
				Object:  obj,
				Sensor:  c.Sensor,
				Filters: append([]string(nil), c.Filters...),
			})
		}

		entities = append(entities, entity)
	}
	LevelSpawned.Publish(w, LevelEvent{ID: l.ID, Count: n})
	return entities
}

var memberQuery = donburi.NewQuery(filter.Contains(LevelMember))

// DespawnLevel removes every entity the level spawned, pulling collision
// objects out of space first. Returns the removed entity count.
func DespawnLevel(w donburi.World, space *resolv.Space, id rowan.LevelID) int {
	var doomed []*donburi.Entry
	memberQuery.Each(w, func(entry *donburi.Entry) {
		if LevelMember.Get(entry).ID == id {
			doomed = append(doomed, entry)
		}
	})
	for _, entry := range doomed {
		if entry.HasComponent(Body) {
			if b := Body.Get(entry); b.Object != nil && space != nil {
				space.Remove(b.Object)
			}
		}
		entry.Remove()
	}
	LevelDespawned.Publish(w, LevelEvent{ID: id, Count: len(doomed)})
	return len(doomed)
}
