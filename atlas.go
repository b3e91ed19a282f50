package rowan

import (
	"encoding/json"
	"fmt"
	"sort"
)

// AtlasLayout is the renderer-facing, ordered list of sub-rectangles cut from
// one texture. Region order IS the atlas index contract: a sprite reference
// that stores index 6 means the seventh region ever added, forever.
type AtlasLayout struct {
	size    SheetPoint
	regions []SpriteRect
	names   map[string]int // optional, populated by TexturePacker import
}

// NewAtlasLayout creates an empty layout for a texture of the given size.
func NewAtlasLayout(size SheetPoint) *AtlasLayout {
	return &AtlasLayout{size: size}
}

// Size returns the texture size the layout was built for.
func (a *AtlasLayout) Size() SheetPoint {
	return a.size
}

// Len returns the region count.
func (a *AtlasLayout) Len() int {
	return len(a.regions)
}

// Add appends a region and returns its index.
func (a *AtlasLayout) Add(r SpriteRect) int {
	a.regions = append(a.regions, r)
	return len(a.regions) - 1
}

// Region returns the region at index, or false if index is out of range.
func (a *AtlasLayout) Region(index int) (SpriteRect, bool) {
	if index < 0 || index >= len(a.regions) {
		debugf("atlas region index %d out of range (len %d)", index, len(a.regions))
		return SpriteRect{}, false
	}
	return a.regions[index], true
}

// Index returns the index for a named region. Names exist only on layouts
// imported from TexturePacker data; sheet-derived layouts are index-only.
func (a *AtlasLayout) Index(name string) (int, bool) {
	i, ok := a.names[name]
	return i, ok
}

// AtlasLayout flattens the sheet into an ordered region list. Indices in the
// result equal sheet indices: region i is the rect At(i) returns. Misses are
// skipped, which cannot happen for a well-formed sheet.
func (s *SpriteSheet) AtlasLayout() *AtlasLayout {
	layout := NewAtlasLayout(s.size)
	for i := 0; i < s.Len(); i++ {
		r, ok := s.At(i)
		if !ok {
			debugf("sheet index %d missing during atlas conversion", i)
			continue
		}
		layout.Add(r)
	}
	return layout
}

// --- TexturePacker import ---

// LoadTexturePackerLayout parses TexturePacker JSON into an AtlasLayout with
// a name table. Both the hash format (single "frames" object) and the array
// format ("textures" list) are supported; array-format pages concatenate in
// page order. Because JSON objects are unordered, frames within one page are
// indexed in sorted-name order to keep indices stable across loads.
func LoadTexturePackerLayout(jsonData []byte) (*AtlasLayout, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
		Meta     struct {
			Size tpSize `json:"size"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("rowan: failed to parse atlas JSON: %w", err)
	}

	layout := NewAtlasLayout(SheetPoint{uint32(probe.Meta.Size.W), uint32(probe.Meta.Size.H)})
	layout.names = make(map[string]int)

	switch {
	case probe.Textures != nil:
		var pages []tpPage
		if err := json.Unmarshal(probe.Textures, &pages); err != nil {
			return nil, fmt.Errorf("rowan: failed to parse atlas textures array: %w", err)
		}
		for _, page := range pages {
			addTPFrames(layout, page.Frames)
		}
	case probe.Frames != nil:
		var frames map[string]tpFrame
		if err := json.Unmarshal(probe.Frames, &frames); err != nil {
			return nil, fmt.Errorf("rowan: failed to parse atlas frames: %w", err)
		}
		addTPFrames(layout, frames)
	default:
		return nil, fmt.Errorf("rowan: atlas JSON has neither \"frames\" nor \"textures\" key")
	}
	return layout, nil
}

type tpRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type tpSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type tpFrame struct {
	Frame tpRect `json:"frame"`
}

type tpPage struct {
	Image  string             `json:"image"`
	Frames map[string]tpFrame `json:"frames"`
}

func addTPFrames(layout *AtlasLayout, frames map[string]tpFrame) {
	names := make([]string, 0, len(frames))
	for name := range frames {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f := frames[name].Frame
		idx := layout.Add(NewSpriteRect(
			uint32(f.X), uint32(f.Y),
			uint32(f.X+f.W), uint32(f.Y+f.H),
		))
		layout.names[name] = idx
	}
}
