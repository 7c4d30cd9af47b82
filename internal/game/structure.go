package game

import (
	"fmt"
	"sync"

	"github.com/pixil98/go-colony/internal/items"
	"github.com/pixil98/go-colony/internal/storage"
	"github.com/pixil98/go-errors"
)

// Structure defines a type of structure loaded from asset files. A capacity of
// zero means the structure has no inventory on that side.
type Structure struct {
	Name           string  `json:"name"`
	InputCapacity  int     `json:"input_capacity"`
	OutputCapacity int     `json:"output_capacity"`
	Recipe         *Recipe `json:"recipe,omitempty"`
}

// Recipe is the fixed conversion a structure performs every TimeTicks ticks.
type Recipe struct {
	Inputs    []items.Count `json:"inputs"`
	Outputs   []items.Count `json:"outputs"`
	TimeTicks int           `json:"time_ticks"`
}

// Validate satisfies storage.ValidatingSpec.
func (s *Structure) Validate() error {
	el := errors.NewErrorList()

	if s.Name == "" {
		el.Add(fmt.Errorf("structure name is required"))
	}
	if s.InputCapacity < 0 {
		el.Add(fmt.Errorf("input_capacity must not be negative"))
	}
	if s.OutputCapacity < 0 {
		el.Add(fmt.Errorf("output_capacity must not be negative"))
	}

	if r := s.Recipe; r != nil {
		if len(r.Inputs) > 0 && s.InputCapacity == 0 {
			el.Add(fmt.Errorf("recipe inputs require an input inventory"))
		}
		if len(r.Outputs) == 0 {
			el.Add(fmt.Errorf("recipe must produce at least one output"))
		} else if s.OutputCapacity == 0 {
			el.Add(fmt.Errorf("recipe outputs require an output inventory"))
		}
		if r.TimeTicks < 1 {
			el.Add(fmt.Errorf("recipe time_ticks must be at least 1"))
		}
		for i, c := range append(append([]items.Count{}, r.Inputs...), r.Outputs...) {
			if c.Item == "" {
				el.Add(fmt.Errorf("recipe entry %d: item is required", i))
			}
			if c.Count < 1 {
				el.Add(fmt.Errorf("recipe entry %d: count must be at least 1", i))
			}
		}
	}

	return el.Err()
}

// ValidateItems checks every recipe item against the manifest.
func (s *Structure) ValidateItems(m *items.Manifest) error {
	if s.Recipe == nil {
		return nil
	}

	el := errors.NewErrorList()
	for _, c := range append(append([]items.Count{}, s.Recipe.Inputs...), s.Recipe.Outputs...) {
		if _, ok := m.Lookup(c.Item); !ok {
			el.Add(fmt.Errorf("recipe item %q: %w", c.Item, items.ErrUnknownItem))
		}
	}
	return el.Err()
}

// guardedInventory serializes access to a structure inventory, which any
// number of units may target in the same tick.
type guardedInventory struct {
	mu  sync.Mutex
	inv *items.Inventory
}

// Use runs fn with exclusive access to the inventory.
func (g *guardedInventory) Use(fn func(*items.Inventory) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.inv)
}

// InputInventory receives items from units.
type InputInventory struct {
	guardedInventory
}

func NewInputInventory(capacity int) (*InputInventory, error) {
	inv, err := items.NewInventory(capacity)
	if err != nil {
		return nil, fmt.Errorf("input inventory: %w", err)
	}
	return &InputInventory{guardedInventory{inv: inv}}, nil
}

// OutputInventory dispenses items to units.
type OutputInventory struct {
	guardedInventory
}

func NewOutputInventory(capacity int) (*OutputInventory, error) {
	inv, err := items.NewInventory(capacity)
	if err != nil {
		return nil, fmt.Errorf("output inventory: %w", err)
	}
	return &OutputInventory{guardedInventory{inv: inv}}, nil
}

// StructureInstance is a placed structure. Input and Output are nil when the
// definition gives that side no capacity.
type StructureInstance struct {
	Id        EntityId
	Name      string
	Structure storage.SmartIdentifier[*Structure]

	Input  *InputInventory
	Output *OutputInventory

	// progress counts ticks toward the next recipe run. Only the production
	// ticker touches it.
	progress int
}

// NewStructureInstance places a structure from a resolved definition.
func NewStructureInstance(name string, def storage.SmartIdentifier[*Structure]) (*StructureInstance, error) {
	s := def.Get()
	if s == nil {
		return nil, fmt.Errorf("unable to create instance from unresolved structure %q", def.Id())
	}

	si := &StructureInstance{
		Id:        NewEntityId(),
		Name:      name,
		Structure: def,
	}

	if s.InputCapacity > 0 {
		in, err := NewInputInventory(s.InputCapacity)
		if err != nil {
			return nil, fmt.Errorf("structure %q: %w", name, err)
		}
		si.Input = in
	}
	if s.OutputCapacity > 0 {
		out, err := NewOutputInventory(s.OutputCapacity)
		if err != nil {
			return nil, fmt.Errorf("structure %q: %w", name, err)
		}
		si.Output = out
	}

	return si, nil
}
