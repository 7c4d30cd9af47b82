package game

import (
	"context"
	"log/slog"

	"github.com/pixil98/go-colony/internal/items"
)

const (
	DefaultActionTicks = 3
)

// ActionTicker advances every unit's current action and, once an action has
// been finished for a full tick, replaces it with the next step toward the
// unit's goal. It never changes goals.
type ActionTicker struct {
	world       *WorldState
	manifest    *items.Manifest
	actionTicks int
}

type ActionTickerOpt func(*ActionTicker)

func NewActionTicker(world *WorldState, manifest *items.Manifest, opts ...ActionTickerOpt) *ActionTicker {
	at := &ActionTicker{
		world:       world,
		manifest:    manifest,
		actionTicks: DefaultActionTicks,
	}
	for _, opt := range opts {
		opt(at)
	}
	return at
}

// WithActionTicks sets how many ticks a pickup or drop-off takes.
func WithActionTicks(n int) ActionTickerOpt {
	return func(at *ActionTicker) {
		at.actionTicks = n
	}
}

func (at *ActionTicker) Tick(ctx context.Context) error {
	structures := at.world.Structures()

	at.world.ForEachUnit(func(_ int, u *UnitInstance) {
		if u.Action.Finished() {
			next := at.plan(u, structures)
			duration := at.actionTicks
			if next.Kind == ActionIdle {
				duration = 1
			}
			u.Action.Replace(next, duration)
			slog.DebugContext(ctx, "unit action planned", "unit", u.Id, "goal", u.Goal, "action", next)
		}
		u.Action.Advance()
	})

	return nil
}

// plan picks the first structure, by name, that can serve the unit's goal.
func (at *ActionTicker) plan(u *UnitInstance, structures []*StructureInstance) UnitAction {
	g := u.Goal

	switch g.Kind {
	case GoalPickup:
		for _, s := range structures {
			if s.Output == nil {
				continue
			}
			var stocked bool
			_ = s.Output.Use(func(inv *items.Inventory) error {
				stocked = inv.Count(g.Item) > 0
				return nil
			})
			if stocked {
				return PickUp(g.Item, s.Id)
			}
		}

	case GoalDropOff:
		if _, ok := at.manifest.Lookup(g.Item); !ok {
			return Idle()
		}
		for _, s := range structures {
			if s.Input == nil {
				continue
			}
			var room bool
			_ = s.Input.Use(func(inv *items.Inventory) error {
				room = inv.RemainingCapacity(g.Item, at.manifest) > 0
				return nil
			})
			if room {
				return DropOffAt(g.Item, s.Id)
			}
		}
	}

	return Idle()
}
