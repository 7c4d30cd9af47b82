package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-colony/internal/game"
	"github.com/pixil98/go-colony/internal/items"
	"github.com/pixil98/go-colony/internal/storage"
	"github.com/pixil98/go-errors"
)

type StorageConfig struct {
	Items      AssetConfig[*items.Item]     `json:"items"`
	Structures AssetConfig[*game.Structure] `json:"structures"`
}

// Catalog holds the static definitions the simulation runs against.
type Catalog struct {
	Manifest   *items.Manifest
	Structures *storage.FileStore[*game.Structure]
}

func (c *StorageConfig) BuildCatalog() (*Catalog, error) {
	itemStore, err := c.Items.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating item store: %w", err)
	}
	structures, err := c.Structures.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating structure store: %w", err)
	}

	m, err := buildManifest(itemStore)
	if err != nil {
		return nil, fmt.Errorf("building item manifest: %w", err)
	}

	el := errors.NewErrorList()
	for _, id := range structures.Ids() {
		def, _ := structures.Get(id)
		if err := def.ValidateItems(m); err != nil {
			el.Add(fmt.Errorf("structure %q: %w", id, err))
		}
	}
	if err := el.Err(); err != nil {
		return nil, err
	}

	return &Catalog{
		Manifest:   m,
		Structures: structures,
	}, nil
}

func buildManifest(st storage.Storer[*items.Item]) (*items.Manifest, error) {
	all := st.GetAll()
	defs := make(map[items.Id]*items.Item, len(all))
	for id, def := range all {
		defs[items.Id(id)] = def
	}
	return items.NewManifest(defs)
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Items.Validate("items"))
	el.Add(c.Structures.Validate("structures"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
