package editor

import (
	"testing"

	"github.com/phanxgames/rowan"
)

func TestSheetEditorGridMode(t *testing.T) {
	e := NewSheetEditor(rowan.SheetPoint{X: 100, Y: 50})
	if !e.IsGrid() {
		t.Fatal("new editor is not in grid mode")
	}
	if err := e.SetGridSize(2, 5); err != nil {
		t.Fatalf("SetGridSize: %v", err)
	}
	if err := e.SetGridSize(0, 5); err == nil {
		t.Error("SetGridSize accepted zero rows")
	}

	outlines := e.Outlines()
	if len(outlines) != 10 {
		t.Fatalf("outline count = %d, want 10", len(outlines))
	}
	if outlines[6] != rowan.NewSpriteRect(20, 25, 40, 50) {
		t.Errorf("outline 6 = %v, want {20 25}-{40 50}", outlines[6])
	}

	s, err := e.Sheet()
	if err != nil {
		t.Fatalf("Sheet: %v", err)
	}
	if !s.IsGrid() || s.Len() != 10 {
		t.Errorf("built sheet = grid %v len %d, want grid 10", s.IsGrid(), s.Len())
	}

	if _, err := e.AddRect(rowan.NewSpriteRect(0, 0, 1, 1)); err == nil {
		t.Error("AddRect succeeded in grid mode")
	}
}

func TestSheetEditorToListKeepsIndices(t *testing.T) {
	e := NewSheetEditor(rowan.SheetPoint{X: 100, Y: 50})
	if err := e.SetGridSize(2, 5); err != nil {
		t.Fatalf("SetGridSize: %v", err)
	}
	e.ToList()
	if e.IsGrid() {
		t.Fatal("still in grid mode after ToList")
	}

	// grid cells carried over in index order
	s, err := e.Sheet()
	if err != nil {
		t.Fatalf("Sheet: %v", err)
	}
	if s.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", s.Len())
	}
	if r, _ := s.At(6); r != rowan.NewSpriteRect(20, 25, 40, 50) {
		t.Errorf("At(6) = %v after mode switch", r)
	}

	idx, err := e.AddRect(rowan.NewSpriteRect(0, 0, 100, 50))
	if err != nil {
		t.Fatalf("AddRect: %v", err)
	}
	if idx != 10 {
		t.Errorf("AddRect index = %d, want 10", idx)
	}

	if err := e.SetGridSize(1, 1); err == nil {
		t.Error("SetGridSize succeeded in list mode")
	}
}

func TestSheetEditorToGridDiscardsRects(t *testing.T) {
	e := NewSheetEditor(rowan.SheetPoint{X: 64, Y: 64})
	e.ToList()
	if _, err := e.AddRect(rowan.NewSpriteRect(0, 0, 8, 8)); err != nil {
		t.Fatalf("AddRect: %v", err)
	}
	if err := e.ToGrid(4, 4); err != nil {
		t.Fatalf("ToGrid: %v", err)
	}
	if err := e.ToGrid(0, 4); err == nil {
		t.Error("ToGrid accepted zero rows")
	}
	s, err := e.Sheet()
	if err != nil {
		t.Fatalf("Sheet: %v", err)
	}
	if !s.IsGrid() || s.Len() != 16 {
		t.Errorf("built sheet = grid %v len %d, want grid 16", s.IsGrid(), s.Len())
	}
}
