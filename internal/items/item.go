package items

import (
	"fmt"
	"slices"

	"github.com/pixil98/go-errors"
)

// Id identifies a type of item (e.g., "berry").
type Id string

func (id Id) String() string {
	return string(id)
}

// Item defines a type of item loaded from asset files.
type Item struct {
	Name string `json:"name"`

	// MaxStackSize is the most of this item a single inventory slot can hold.
	MaxStackSize int `json:"max_stack_size"`
}

// Validate satisfies storage.ValidatingSpec.
func (i *Item) Validate() error {
	el := errors.NewErrorList()

	if i.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	if i.MaxStackSize < 1 {
		el.Add(fmt.Errorf("max_stack_size must be at least 1"))
	}

	return el.Err()
}

// Manifest is the read-only lookup from item id to item definition. It is
// never mutated after construction and may be shared across goroutines.
type Manifest struct {
	items map[Id]*Item
}

// NewManifest builds a manifest from the given definitions. Every definition
// is validated; all problems are reported together.
func NewManifest(defs map[Id]*Item) (*Manifest, error) {
	el := errors.NewErrorList()

	m := &Manifest{items: make(map[Id]*Item, len(defs))}
	for id, def := range defs {
		if id == "" {
			el.Add(fmt.Errorf("item id must be set"))
			continue
		}
		if def == nil {
			el.Add(fmt.Errorf("item %q: definition is nil", id))
			continue
		}
		if err := def.Validate(); err != nil {
			el.Add(fmt.Errorf("item %q: %w", id, err))
			continue
		}
		cp := *def
		m.items[id] = &cp
	}

	if err := el.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// Lookup returns the definition for id, if known.
func (m *Manifest) Lookup(id Id) (*Item, bool) {
	def, ok := m.items[id]
	return def, ok
}

// MaxStackSize returns the max stack size for id. The manifest is populated
// exhaustively at startup, so an unknown id is a programming error and panics.
func (m *Manifest) MaxStackSize(id Id) int {
	def, ok := m.items[id]
	if !ok {
		panic(fmt.Sprintf("items: max stack size requested for unknown item %q", id))
	}
	return def.MaxStackSize
}

// Ids returns every item id in the manifest, sorted.
func (m *Manifest) Ids() []Id {
	ids := make([]Id, 0, len(m.items))
	for id := range m.items {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
