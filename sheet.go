package rowan

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// SheetExtension is the file extension for sprite sheet definitions. A sheet
// file lives next to its image with the extension swapped: "hero.png" is
// described by "hero.sheet".
const SheetExtension = "sheet"

// SheetPoint is a pixel coordinate or size on a sheet image.
// Serializes as the flow sequence [x, y].
type SheetPoint struct {
	X, Y uint32
}

// MarshalYAML encodes the point as [x, y].
func (p SheetPoint) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(uint64(p.X), 10)},
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(uint64(p.Y), 10)},
		},
	}, nil
}

// UnmarshalYAML decodes the point from [x, y].
func (p *SheetPoint) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) != 2 {
		return fmt.Errorf("rowan: point must be a two-element sequence, line %d", value.Line)
	}
	var arr [2]uint32
	if err := value.Decode(&arr); err != nil {
		return err
	}
	p.X, p.Y = arr[0], arr[1]
	return nil
}

// SpriteRect is one sub-rectangle of a sheet image, given by its min and max
// pixel corners.
type SpriteRect struct {
	Min SheetPoint `yaml:"min"`
	Max SheetPoint `yaml:"max"`
}

// NewSpriteRect builds a rect from corner coordinates.
func NewSpriteRect(minX, minY, maxX, maxY uint32) SpriteRect {
	return SpriteRect{Min: SheetPoint{minX, minY}, Max: SheetPoint{maxX, maxY}}
}

// Size returns the rect's pixel dimensions.
func (r SpriteRect) Size() SheetPoint {
	return SheetPoint{r.Max.X - r.Min.X, r.Max.Y - r.Min.Y}
}

// Rect converts to a float Rect for hit testing and view culling.
func (r SpriteRect) Rect() Rect {
	sz := r.Size()
	return Rect{
		X:     float64(r.Min.X),
		Y:     float64(r.Min.Y),
		Width: float64(sz.X), Height: float64(sz.Y),
	}
}

// SpriteSheet describes how one fixed-size image partitions into addressable
// sub-rectangles, either as a uniform grid or an explicit list. A sheet is
// immutable once constructed; grid cell size is computed at construction, so
// lookups share no mutable state and a sheet may be read from any goroutine.
type SpriteSheet struct {
	size SheetPoint

	// exactly one of grid (rows > 0) or list is populated
	rows, cols uint32
	cell       SheetPoint
	list       []SpriteRect
}

// NewGridSheet builds a sheet whose image divides into rows x cols equal
// cells, enumerated row-major. Rows and cols must both be positive: a zero
// dimension has no meaningful cell size and is rejected here rather than
// surfacing later as a division fault.
func NewGridSheet(size SheetPoint, rows, cols uint32) (*SpriteSheet, error) {
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("rowan: grid sheet %dx%d: rows and cols must be positive", rows, cols)
	}
	return &SpriteSheet{
		size: size,
		rows: rows,
		cols: cols,
		cell: SheetPoint{size.X / cols, size.Y / rows},
	}, nil
}

// NewListSheet builds a sheet from an explicit ordered rect list.
// The rects are copied.
func NewListSheet(size SheetPoint, rects ...SpriteRect) *SpriteSheet {
	list := make([]SpriteRect, len(rects))
	copy(list, rects)
	return &SpriteSheet{size: size, list: list}
}

// Size returns the sheet image's pixel size.
func (s *SpriteSheet) Size() SheetPoint {
	return s.size
}

// IsGrid reports whether the sheet uses a grid layout.
func (s *SpriteSheet) IsGrid() bool {
	return s.rows > 0
}

// Grid returns the grid dimensions. ok is false for list sheets.
func (s *SpriteSheet) Grid() (rows, cols uint32, ok bool) {
	if !s.IsGrid() {
		return 0, 0, false
	}
	return s.rows, s.cols, true
}

// CellSize returns the per-cell pixel size of a grid sheet.
// ok is false for list sheets.
func (s *SpriteSheet) CellSize() (SheetPoint, bool) {
	if !s.IsGrid() {
		return SheetPoint{}, false
	}
	return s.cell, true
}

// Rects returns a copy of a list sheet's rects. Nil for grid sheets.
func (s *SpriteSheet) Rects() []SpriteRect {
	if s.IsGrid() {
		return nil
	}
	out := make([]SpriteRect, len(s.list))
	copy(out, s.list)
	return out
}

// Len returns the total addressable sprite count: rows*cols for a grid,
// the list length otherwise.
func (s *SpriteSheet) Len() int {
	if s.IsGrid() {
		return int(s.rows * s.cols)
	}
	return len(s.list)
}

// At returns the sub-rectangle for index. Grid sheets enumerate row-major
// (index = row*cols + col); an index past the last row is a miss, not an
// error. List sheets look up by position.
func (s *SpriteSheet) At(index int) (SpriteRect, bool) {
	if index < 0 {
		return SpriteRect{}, false
	}
	if s.IsGrid() {
		row := uint32(index) / s.cols
		if row >= s.rows {
			return SpriteRect{}, false
		}
		col := uint32(index) % s.cols
		x := s.cell.X * col
		y := s.cell.Y * row
		return SpriteRect{
			Min: SheetPoint{x, y},
			Max: SheetPoint{x + s.cell.X, y + s.cell.Y},
		}, true
	}
	if index >= len(s.list) {
		return SpriteRect{}, false
	}
	return s.list[index], true
}

// --- Serialization ---

// The sheet file shape is {layout: ..., size: [w, h]} where layout is either
// a grid mapping {rows, cols} or a rect sequence. The variant carries no
// discriminant field; readers disambiguate structurally. Cell size is derived
// and never persisted.

type sheetGridDoc struct {
	Rows uint32 `yaml:"rows"`
	Cols uint32 `yaml:"cols"`
}

// MarshalYAML encodes the sheet in its file shape.
func (s *SpriteSheet) MarshalYAML() (any, error) {
	if s.IsGrid() {
		return struct {
			Layout sheetGridDoc `yaml:"layout"`
			Size   SheetPoint   `yaml:"size"`
		}{Layout: sheetGridDoc{Rows: s.rows, Cols: s.cols}, Size: s.size}, nil
	}
	return struct {
		Layout []SpriteRect `yaml:"layout"`
		Size   SheetPoint   `yaml:"size"`
	}{Layout: s.list, Size: s.size}, nil
}

// UnmarshalYAML decodes the sheet from its file shape, validating grid
// dimensions the same way NewGridSheet does.
func (s *SpriteSheet) UnmarshalYAML(value *yaml.Node) error {
	var doc struct {
		Layout yaml.Node  `yaml:"layout"`
		Size   SheetPoint `yaml:"size"`
	}
	if err := value.Decode(&doc); err != nil {
		return err
	}
	switch doc.Layout.Kind {
	case yaml.MappingNode:
		var grid sheetGridDoc
		if err := doc.Layout.Decode(&grid); err != nil {
			return err
		}
		sheet, err := NewGridSheet(doc.Size, grid.Rows, grid.Cols)
		if err != nil {
			return err
		}
		*s = *sheet
	case yaml.SequenceNode:
		var list []SpriteRect
		if err := doc.Layout.Decode(&list); err != nil {
			return err
		}
		*s = *NewListSheet(doc.Size, list...)
	case 0:
		return fmt.Errorf("rowan: sheet is missing its layout")
	default:
		return fmt.Errorf("rowan: sheet layout must be a grid mapping or a rect sequence, got %s on line %d",
			nodeKindName(doc.Layout.Kind), doc.Layout.Line)
	}
	return nil
}

// ParseSheet decodes a sheet definition file.
func ParseSheet(data []byte) (*SpriteSheet, error) {
	var s SpriteSheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("rowan: failed to parse sheet: %w", err)
	}
	return &s, nil
}
