package command

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pixil98/go-colony/internal/game"
	"github.com/pixil98/go-colony/internal/items"
	"github.com/pixil98/go-colony/internal/storage"
	"github.com/pixil98/go-errors"
	"gopkg.in/yaml.v3"
)

type SeedConfig struct {
	Path string `json:"path"`
}

func (c *SeedConfig) validate() error {
	if c.Path == "" {
		return fmt.Errorf("seed: path is required")
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("seed: invalid path %q: %w", c.Path, err)
	}
	return nil
}

func (c *SeedConfig) Load() (*Seed, error) {
	b, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, fmt.Errorf("reading seed: %w", err)
	}
	return ParseSeed(b)
}

// Seed is the starting population of a world.
type Seed struct {
	Structures []StructureSeed `yaml:"structures"`
	Units      []UnitSeed      `yaml:"units"`
}

type StructureSeed struct {
	Name      string                                   `yaml:"name"`
	Structure storage.SmartIdentifier[*game.Structure] `yaml:"structure"`
	Input     []items.Count                            `yaml:"input,omitempty"`
	Output    []items.Count                            `yaml:"output,omitempty"`
}

type UnitSeed struct {
	Count int          `yaml:"count"`
	Goal  game.Goal    `yaml:"goal"`
	Held  *items.Count `yaml:"held,omitempty"`
}

func ParseSeed(b []byte) (*Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validating seed: %w", err)
	}
	return &s, nil
}

func (s *Seed) Validate() error {
	el := errors.NewErrorList()

	names := map[string]bool{}
	for i, st := range s.Structures {
		if st.Name == "" {
			el.Add(fmt.Errorf("structure %d: name is required", i))
		} else if names[st.Name] {
			el.Add(fmt.Errorf("structure %d: duplicate name %q", i, st.Name))
		}
		names[st.Name] = true

		if err := st.Structure.Validate(); err != nil {
			el.Add(fmt.Errorf("structure %d: %w", i, err))
		}
	}

	for i, u := range s.Units {
		if u.Count < 1 {
			el.Add(fmt.Errorf("unit group %d: count must be at least 1", i))
		}
		if err := u.Goal.Validate(); err != nil {
			el.Add(fmt.Errorf("unit group %d: %w", i, err))
		}
	}

	return el.Err()
}

// Populate resolves the seed against the catalog and spawns everything into
// the world. Seeded contents must fit; nothing is silently dropped.
func (s *Seed) Populate(ctx context.Context, w *game.WorldState, cat *Catalog) error {
	for _, st := range s.Structures {
		if err := st.Structure.Resolve(cat.Structures); err != nil {
			return fmt.Errorf("structure %q: %w", st.Name, err)
		}

		si, err := game.NewStructureInstance(st.Name, st.Structure)
		if err != nil {
			return err
		}

		var inUse, outUse useFunc
		if si.Input != nil {
			inUse = si.Input.Use
		}
		if si.Output != nil {
			outUse = si.Output.Use
		}
		if err := stock(inUse, st.Input, cat.Manifest); err != nil {
			return fmt.Errorf("structure %q input: %w", st.Name, err)
		}
		if err := stock(outUse, st.Output, cat.Manifest); err != nil {
			return fmt.Errorf("structure %q output: %w", st.Name, err)
		}

		if err := w.AddStructure(si); err != nil {
			return fmt.Errorf("structure %q: %w", st.Name, err)
		}
	}

	for i, us := range s.Units {
		if us.Goal.Kind != game.GoalWander {
			if _, ok := cat.Manifest.Lookup(us.Goal.Item); !ok {
				return fmt.Errorf("unit group %d: goal item %q: %w", i, us.Goal.Item, items.ErrUnknownItem)
			}
		}

		for range us.Count {
			u := game.NewUnitInstance(us.Goal)
			if us.Held != nil {
				if err := fillExact(u.Held.Inventory, *us.Held, cat.Manifest); err != nil {
					return fmt.Errorf("unit group %d held: %w", i, err)
				}
			}
			w.AddUnit(u)
		}
	}

	slog.InfoContext(ctx, "world seeded", "structures", len(s.Structures), "units", w.UnitCount())
	return nil
}

type useFunc func(func(*items.Inventory) error) error

func stock(use useFunc, contents []items.Count, m *items.Manifest) error {
	if len(contents) == 0 {
		return nil
	}
	if use == nil {
		return fmt.Errorf("structure has no inventory on this side")
	}

	return use(func(inv *items.Inventory) error {
		for _, c := range contents {
			if err := fillExact(inv, c, m); err != nil {
				return err
			}
		}
		return nil
	})
}

func fillExact(inv *items.Inventory, c items.Count, m *items.Manifest) error {
	n, err := inv.AddItem(c, m)
	if err != nil {
		return err
	}
	if n < c.Count {
		return fmt.Errorf("%s: only %d fit: %w", c, n, items.ErrStackOverflow)
	}
	return nil
}
