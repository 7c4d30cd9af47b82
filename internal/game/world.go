package game

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
)

// WorldState owns every unit and structure. Units live in an append-only
// arena so their indices are stable; structures are looked up by EntityId and
// may disappear at any time.
type WorldState struct {
	mu         sync.RWMutex
	units      []*UnitInstance
	structures map[EntityId]*StructureInstance
}

func NewWorldState() *WorldState {
	return &WorldState{
		structures: make(map[EntityId]*StructureInstance),
	}
}

// AddUnit appends a unit and returns its arena index.
func (w *WorldState) AddUnit(u *UnitInstance) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.units = append(w.units, u)
	return len(w.units) - 1
}

// Unit returns the unit at arena index i, or nil if out of range.
func (w *WorldState) Unit(i int) *UnitInstance {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if i < 0 || i >= len(w.units) {
		return nil
	}
	return w.units[i]
}

func (w *WorldState) UnitCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.units)
}

// Units returns a snapshot of the unit arena.
func (w *WorldState) Units() []*UnitInstance {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return slices.Clone(w.units)
}

// ForEachUnit calls fn for each unit in arena order.
func (w *WorldState) ForEachUnit(fn func(int, *UnitInstance)) {
	for i, u := range w.Units() {
		fn(i, u)
	}
}

// AddStructure registers a placed structure.
func (w *WorldState) AddStructure(s *StructureInstance) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.structures[s.Id]; exists {
		return fmt.Errorf("%w: %s", ErrStructureExists, s.Id)
	}
	w.structures[s.Id] = s
	return nil
}

// RemoveStructure despawns a structure. Units still holding actions that
// reference it will find it missing when those actions resolve.
func (w *WorldState) RemoveStructure(id EntityId) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.structures[id]; !exists {
		return fmt.Errorf("%w: %s", ErrStructureNotFound, id)
	}
	delete(w.structures, id)
	return nil
}

func (w *WorldState) Structure(id EntityId) (*StructureInstance, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	s, ok := w.structures[id]
	return s, ok
}

// Structures returns every structure ordered by name, then id.
func (w *WorldState) Structures() []*StructureInstance {
	w.mu.RLock()
	out := make([]*StructureInstance, 0, len(w.structures))
	for _, s := range w.structures {
		out = append(out, s)
	}
	w.mu.RUnlock()

	slices.SortFunc(out, func(a, b *StructureInstance) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.Id, b.Id)
	})
	return out
}

// InputInventory resolves the input inventory on structure id. It reports
// false if the structure is gone or has no input side.
func (w *WorldState) InputInventory(id EntityId) (*InputInventory, bool) {
	s, ok := w.Structure(id)
	if !ok || s.Input == nil {
		return nil, false
	}
	return s.Input, true
}

// OutputInventory resolves the output inventory on structure id. It reports
// false if the structure is gone or has no output side.
func (w *WorldState) OutputInventory(id EntityId) (*OutputInventory, bool) {
	s, ok := w.Structure(id)
	if !ok || s.Output == nil {
		return nil, false
	}
	return s.Output, true
}
