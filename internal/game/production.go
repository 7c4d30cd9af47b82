package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pixil98/go-colony/internal/items"
)

// ProductionTicker runs each structure's recipe, consuming from its input
// inventory and producing into its output inventory.
type ProductionTicker struct {
	world    *WorldState
	manifest *items.Manifest
}

func NewProductionTicker(world *WorldState, manifest *items.Manifest) *ProductionTicker {
	return &ProductionTicker{
		world:    world,
		manifest: manifest,
	}
}

func (pt *ProductionTicker) Tick(ctx context.Context) error {
	for _, s := range pt.world.Structures() {
		def := s.Structure.Get()
		if def == nil || def.Recipe == nil || s.Output == nil {
			continue
		}

		r := def.Recipe
		if s.progress < r.TimeTicks {
			s.progress++
		}
		if s.progress < r.TimeTicks {
			continue
		}

		ran, err := pt.craft(s, r)
		if err != nil {
			return fmt.Errorf("producing at %q: %w", s.Name, err)
		}
		if ran {
			s.progress = 0
			slog.DebugContext(ctx, "structure produced", "structure", s.Name, "outputs", r.Outputs)
		}
	}

	return nil
}

// craft runs the recipe once if every input is present and every output fits.
// The input inventory is always locked before the output inventory.
func (pt *ProductionTicker) craft(s *StructureInstance, r *Recipe) (bool, error) {
	var ran bool

	produce := func(in *items.Inventory) error {
		return s.Output.Use(func(out *items.Inventory) error {
			fits, err := pt.fits(out, r.Outputs)
			if err != nil || !fits {
				return err
			}

			for _, c := range r.Inputs {
				in.RemoveItem(c)
			}
			for _, c := range r.Outputs {
				if _, err := out.AddItem(c, pt.manifest); err != nil {
					return err
				}
			}
			ran = true
			return nil
		})
	}

	if len(r.Inputs) == 0 {
		return ran, produce(nil)
	}
	if s.Input == nil {
		return false, nil
	}

	err := s.Input.Use(func(in *items.Inventory) error {
		for _, c := range r.Inputs {
			if in.Count(c.Item) < c.Count {
				return nil
			}
		}
		return produce(in)
	})
	return ran, err
}

func (pt *ProductionTicker) fits(out *items.Inventory, outputs []items.Count) (bool, error) {
	trial := out.Clone()
	for _, c := range outputs {
		n, err := trial.AddItem(c, pt.manifest)
		if err != nil {
			return false, err
		}
		if n < c.Count {
			return false, nil
		}
	}
	return true, nil
}
