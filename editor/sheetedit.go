package editor

import (
	"fmt"

	"github.com/phanxgames/rowan"
)

// SheetEditor builds a sprite sheet definition interactively. It keeps the
// layout mutable while editing and only constructs the immutable
// rowan.SpriteSheet when the user saves.
type SheetEditor struct {
	size rowan.SheetPoint

	grid       bool
	rows, cols uint32
	rects      []rowan.SpriteRect
}

// NewSheetEditor starts editing a sheet for an image of the given size,
// in grid mode with a single cell.
func NewSheetEditor(size rowan.SheetPoint) *SheetEditor {
	return &SheetEditor{size: size, grid: true, rows: 1, cols: 1}
}

// Size returns the image size being edited.
func (e *SheetEditor) Size() rowan.SheetPoint {
	return e.size
}

// IsGrid reports whether the editor is in grid mode.
func (e *SheetEditor) IsGrid() bool {
	return e.grid
}

// ToGrid switches to grid mode with the given dimensions, discarding any
// explicit rects.
func (e *SheetEditor) ToGrid(rows, cols uint32) error {
	if rows == 0 || cols == 0 {
		return fmt.Errorf("rowan: sheet editor: grid %dx%d: rows and cols must be positive", rows, cols)
	}
	e.grid = true
	e.rows, e.cols = rows, cols
	e.rects = nil
	return nil
}

// ToList switches to list mode. The current grid cells carry over as
// explicit rects so sprite indices keep their meaning.
func (e *SheetEditor) ToList() {
	if !e.grid {
		return
	}
	sheet, err := rowan.NewGridSheet(e.size, e.rows, e.cols)
	if err == nil {
		e.rects = make([]rowan.SpriteRect, 0, sheet.Len())
		for i := 0; i < sheet.Len(); i++ {
			r, _ := sheet.At(i)
			e.rects = append(e.rects, r)
		}
	}
	e.grid = false
	e.rows, e.cols = 0, 0
}

// SetGridSize changes the grid dimensions in place. Only valid in grid mode.
func (e *SheetEditor) SetGridSize(rows, cols uint32) error {
	if !e.grid {
		return fmt.Errorf("rowan: sheet editor: not in grid mode")
	}
	if rows == 0 || cols == 0 {
		return fmt.Errorf("rowan: sheet editor: grid %dx%d: rows and cols must be positive", rows, cols)
	}
	e.rows, e.cols = rows, cols
	return nil
}

// AddRect appends a rect in list mode and returns its index.
func (e *SheetEditor) AddRect(r rowan.SpriteRect) (int, error) {
	if e.grid {
		return 0, fmt.Errorf("rowan: sheet editor: AddRect requires list mode")
	}
	e.rects = append(e.rects, r)
	return len(e.rects) - 1, nil
}

// Outlines returns every sprite boundary for the host to draw, in index
// order.
func (e *SheetEditor) Outlines() []rowan.SpriteRect {
	if !e.grid {
		out := make([]rowan.SpriteRect, len(e.rects))
		copy(out, e.rects)
		return out
	}
	sheet, err := rowan.NewGridSheet(e.size, e.rows, e.cols)
	if err != nil {
		return nil
	}
	out := make([]rowan.SpriteRect, 0, sheet.Len())
	for i := 0; i < sheet.Len(); i++ {
		r, _ := sheet.At(i)
		out = append(out, r)
	}
	return out
}

// Sheet constructs the immutable sheet from the current editor state.
func (e *SheetEditor) Sheet() (*rowan.SpriteSheet, error) {
	if e.grid {
		return rowan.NewGridSheet(e.size, e.rows, e.cols)
	}
	return rowan.NewListSheet(e.size, e.rects...), nil
}
