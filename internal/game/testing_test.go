package game

import (
	"testing"

	"github.com/pixil98/go-colony/internal/items"
	"github.com/pixil98/go-colony/internal/storage"
)

func newTestManifest(t *testing.T, stacks map[items.Id]int) *items.Manifest {
	t.Helper()

	defs := make(map[items.Id]*items.Item, len(stacks))
	for id, n := range stacks {
		defs[id] = &items.Item{Name: string(id), MaxStackSize: n}
	}
	m, err := items.NewManifest(defs)
	if err != nil {
		t.Fatalf("building manifest: %v", err)
	}
	return m
}

func newTestStructure(t *testing.T, w *WorldState, name string, def *Structure) *StructureInstance {
	t.Helper()

	if def.Name == "" {
		def.Name = name
	}
	si, err := NewStructureInstance(name, storage.NewResolvedSmartIdentifier(name, def))
	if err != nil {
		t.Fatalf("creating structure %q: %v", name, err)
	}
	if w != nil {
		if err := w.AddStructure(si); err != nil {
			t.Fatalf("adding structure %q: %v", name, err)
		}
	}
	return si
}

func fill(t *testing.T, m *items.Manifest, use func(func(*items.Inventory) error) error, c items.Count) {
	t.Helper()

	err := use(func(inv *items.Inventory) error {
		_, err := inv.AddItem(c, m)
		return err
	})
	if err != nil {
		t.Fatalf("filling %s: %v", c, err)
	}
}

func count(use func(func(*items.Inventory) error) error, id items.Id) int {
	var n int
	_ = use(func(inv *items.Inventory) error {
		n = inv.Count(id)
		return nil
	})
	return n
}
