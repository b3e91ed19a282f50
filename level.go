package rowan

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LevelExtension is the file extension for level definitions.
const LevelExtension = "level"

// LevelID uniquely identifies a level.
type LevelID int

// String returns the decimal form used in registries and file names.
func (id LevelID) String() string {
	return strconv.Itoa(int(id))
}

// ParseLevelID parses the decimal form.
func ParseLevelID(s string) (LevelID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("rowan: malformed level id %q: %w", s, err)
	}
	return LevelID(n), nil
}

// Level is a serializable area loaded as one unit: a named list of static
// elements plus the ids of adjacent levels to preload while the player is
// inside this one.
type Level struct {
	Name     string    `yaml:"name"`
	ID       LevelID   `yaml:"id"`
	Adjacent []LevelID `yaml:"adjacent,omitempty"`
	Elements []Element `yaml:"elements,omitempty"`
}

// Element is one static level entry: where it sits, what it looks like, and
// what it collides as. Sprite is the asset key's string form; SpriteIndex
// addresses into the key's atlas layout when the asset is a sheet.
type Element struct {
	Position Vec2 `yaml:"position"`
	// DrawLayer orders painting; higher layers paint in front. Elements on
	// the same layer have no defined relative order.
	DrawLayer   int          `yaml:"draw_layer,omitempty"`
	Rotation    float64      `yaml:"rotation,omitempty"`
	Scale       *Vec2        `yaml:"scale,omitempty"`
	Collider    *ColliderDef `yaml:"collider,omitempty"`
	Sprite      string       `yaml:"sprite"`
	SpriteIndex *int         `yaml:"sprite_index,omitempty"`
}

// WithSpriteIndex returns a copy of the element addressing one sheet sprite.
func (e Element) WithSpriteIndex(index int) Element {
	e.SpriteIndex = &index
	return e
}

// ColliderDef describes an element's axis-aligned collision body.
// Members are the tags the body carries; Filters are the tags it tests
// against when checking for overlaps. A Sensor body detects overlaps without
// blocking movement.
type ColliderDef struct {
	Width   float64  `yaml:"width"`
	Height  float64  `yaml:"height"`
	Sensor  bool     `yaml:"sensor,omitempty"`
	Members []string `yaml:"members,omitempty"`
	Filters []string `yaml:"filters,omitempty"`
}

// SpriteKeys returns the unique sprite key strings used by the level's
// elements, in first-appearance order.
func (l *Level) SpriteKeys() []string {
	seen := make(map[string]struct{}, len(l.Elements))
	var keys []string
	for _, e := range l.Elements {
		if _, dup := seen[e.Sprite]; dup {
			continue
		}
		seen[e.Sprite] = struct{}{}
		keys = append(keys, e.Sprite)
	}
	return keys
}

// Marshal encodes the level in its file shape.
func (l *Level) Marshal() ([]byte, error) {
	return yaml.Marshal(l)
}

// ParseLevel decodes a level definition file.
func ParseLevel(data []byte) (*Level, error) {
	var l Level
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("rowan: failed to parse level: %w", err)
	}
	return &l, nil
}

// LoadLevel reads and decodes a level file.
func LoadLevel(fsys fs.FS, path string) (*Level, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("rowan: level at %q: %w", path, err)
	}
	return ParseLevel(data)
}

// LoadLevelAssets loads the image and sheet for every sprite key the level
// references. Keys that do not parse are skipped with a debug warning (a
// level may reference assets another library owns). A missing sheet is fine,
// since plain images have none, but a missing image or a malformed sheet is
// an error. All errors are collected so one bad asset doesn't hide the rest.
func LoadLevelAssets[K AssetKey](l *Level, lib *Library[K]) error {
	var errs []error
	for _, raw := range l.SpriteKeys() {
		key, ok := lib.ParseKey(raw)
		if !ok {
			debugf("level %v: skipping unparsable sprite key %q", l.ID, raw)
			continue
		}
		if _, err := lib.Image(key); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, err := lib.Sheet(key); err != nil && !errors.Is(err, ErrAssetNotFound) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LevelRegistry tracks where level files live and which levels are loading
// or loaded. It backs adjacency preloading: when a level becomes current,
// its adjacent ids are checked here and kicked off if still unknown.
type LevelRegistry struct {
	paths   map[LevelID]string
	loading map[LevelID]struct{}
	loaded  map[LevelID]struct{}
}

// NewLevelRegistry creates an empty registry.
func NewLevelRegistry() *LevelRegistry {
	return &LevelRegistry{
		paths:   make(map[LevelID]string),
		loading: make(map[LevelID]struct{}),
		loaded:  make(map[LevelID]struct{}),
	}
}

// SetLevelPath registers the file path for a level id.
func (r *LevelRegistry) SetLevelPath(id LevelID, path string) {
	r.paths[id] = path
}

// LevelPath returns the registered file path for a level id.
func (r *LevelRegistry) LevelPath(id LevelID) (string, bool) {
	p, ok := r.paths[id]
	return p, ok
}

// IsLoadingOrLoaded reports whether the level is already in flight or done.
func (r *LevelRegistry) IsLoadingOrLoaded(id LevelID) bool {
	if _, ok := r.loading[id]; ok {
		return true
	}
	_, ok := r.loaded[id]
	return ok
}

// IsLoaded reports whether the level finished loading.
func (r *LevelRegistry) IsLoaded(id LevelID) bool {
	_, ok := r.loaded[id]
	return ok
}

// SetLoading marks the level as in flight.
func (r *LevelRegistry) SetLoading(id LevelID) {
	r.loading[id] = struct{}{}
}

// SetLoaded moves the level from loading to loaded.
func (r *LevelRegistry) SetLoaded(id LevelID) {
	delete(r.loading, id)
	r.loaded[id] = struct{}{}
}

// Load reads the level registered under id.
func (r *LevelRegistry) Load(fsys fs.FS, id LevelID) (*Level, error) {
	p, ok := r.paths[id]
	if !ok {
		return nil, fmt.Errorf("rowan: level %v: %w", id, ErrNoPath)
	}
	return LoadLevel(fsys, p)
}
