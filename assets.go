package rowan

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
)

// Errors reported by Library lookups. Loading failures wrap these so callers
// can errors.Is against the category while keeping the detail.
var (
	// ErrNoPath means no path was registered for the key.
	ErrNoPath = errors.New("no path registered")
	// ErrAssetNotFound means the registered path did not resolve to a file.
	ErrAssetNotFound = errors.New("asset not found")
)

// AssetKey constrains the key type a Library is indexed by. Keys are small
// comparable values with a stable string form; the string form is what level
// files store.
type AssetKey interface {
	comparable
	fmt.Stringer
}

// Library loads and caches the assets a level needs: sheet images, their
// ".sheet" definitions, and the atlas layouts derived from them. Paths are
// registered up front (or carried by the keys themselves via parse); loads
// are synchronous and cached per key.
//
// A Library reads from an fs.FS so games can serve assets from disk, embed.FS,
// or test fixtures interchangeably.
type Library[K AssetKey] struct {
	fsys  fs.FS
	parse func(string) (K, bool)

	paths   map[K]string
	images  map[K]*ebiten.Image
	sheets  map[K]*SpriteSheet
	layouts map[K]*AtlasLayout
}

// NewLibrary creates a Library over fsys. parse converts the string form
// stored in level files back into a key; it may be nil if the game never
// spawns levels through this library.
func NewLibrary[K AssetKey](fsys fs.FS, parse func(string) (K, bool)) *Library[K] {
	return &Library[K]{
		fsys:    fsys,
		parse:   parse,
		paths:   make(map[K]string),
		images:  make(map[K]*ebiten.Image),
		sheets:  make(map[K]*SpriteSheet),
		layouts: make(map[K]*AtlasLayout),
	}
}

// SetPath registers the image path for a key. The sheet definition path is
// derived from it by swapping the extension for SheetExtension.
func (l *Library[K]) SetPath(key K, imagePath string) {
	l.paths[key] = imagePath
}

// Path returns the registered image path for a key.
func (l *Library[K]) Path(key K) (string, bool) {
	p, ok := l.paths[key]
	return p, ok
}

// ParseKey converts the string form stored in level files into a key.
func (l *Library[K]) ParseKey(s string) (K, bool) {
	if l.parse == nil {
		var zero K
		return zero, false
	}
	return l.parse(s)
}

// Image returns the decoded image for a key, loading it on first access.
func (l *Library[K]) Image(key K) (*ebiten.Image, error) {
	if img, ok := l.images[key]; ok {
		return img, nil
	}
	p, ok := l.paths[key]
	if !ok {
		return nil, fmt.Errorf("rowan: image %v: %w", key, ErrNoPath)
	}
	f, err := l.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("rowan: image %v at %q: %w", key, p, ErrAssetNotFound)
	}
	defer f.Close()
	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("rowan: failed to decode image %v at %q: %w", key, p, err)
	}
	img := ebiten.NewImageFromImage(decoded)
	l.images[key] = img
	return img, nil
}

// Sheet returns the sheet definition for a key, loading it on first access
// from the image path with its extension swapped to SheetExtension.
func (l *Library[K]) Sheet(key K) (*SpriteSheet, error) {
	if s, ok := l.sheets[key]; ok {
		return s, nil
	}
	p, ok := l.paths[key]
	if !ok {
		return nil, fmt.Errorf("rowan: sheet %v: %w", key, ErrNoPath)
	}
	sp := sheetPath(p)
	data, err := fs.ReadFile(l.fsys, sp)
	if err != nil {
		return nil, fmt.Errorf("rowan: sheet %v at %q: %w", key, sp, ErrAssetNotFound)
	}
	s, err := ParseSheet(data)
	if err != nil {
		return nil, fmt.Errorf("rowan: sheet %v at %q: %w", key, sp, err)
	}
	l.sheets[key] = s
	return s, nil
}

// Layout returns the atlas layout for a key's sheet, converting and caching
// it on first access. Sprite indices into this layout equal sheet indices.
func (l *Library[K]) Layout(key K) (*AtlasLayout, error) {
	if a, ok := l.layouts[key]; ok {
		return a, nil
	}
	s, err := l.Sheet(key)
	if err != nil {
		return nil, err
	}
	a := s.AtlasLayout()
	l.layouts[key] = a
	return a, nil
}

// sheetPath swaps an image path's extension for SheetExtension.
func sheetPath(imagePath string) string {
	ext := path.Ext(imagePath)
	return imagePath[:len(imagePath)-len(ext)] + "." + SheetExtension
}
