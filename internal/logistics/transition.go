package logistics

import (
	"fmt"

	"github.com/pixil98/go-colony/internal/game"
	"github.com/pixil98/go-colony/internal/items"
)

// BatchSize is the number of items requested by a single pickup or drop-off.
const BatchSize = 1

// Counterparts resolves the structure inventories that actions target. A
// false result means the structure is gone or lacks that inventory.
type Counterparts interface {
	InputInventory(game.EntityId) (*game.InputInventory, bool)
	OutputInventory(game.EntityId) (*game.OutputInventory, bool)
}

// Outcome is the result of resolving one finished action.
type Outcome struct {
	// Handled is false for action kinds this package does not act on. The
	// goal must then be left alone.
	Handled bool

	CounterpartFound bool
	Requested        int
	Transferred      int

	Goal game.Goal
}

// Resolve performs the transfer for a finished pickup or drop-off and picks
// the unit's next goal:
//
//	pickup:   held full -> DropOff(item), otherwise Pickup(item)
//	drop-off: held empty -> Wander, otherwise DropOff(item)
//	either:   counterpart missing -> Wander, no transfer attempted
//
// Only ErrUnknownItem-class failures are returned as errors.
func Resolve(action game.UnitAction, held *game.HeldItem, cp Counterparts, m *items.Manifest) (Outcome, error) {
	switch action.Kind {
	case game.ActionPickUp:
		return resolvePickUp(action, held, cp, m)
	case game.ActionDropOff:
		return resolveDropOff(action, held, cp, m)
	default:
		return Outcome{}, nil
	}
}

func resolvePickUp(action game.UnitAction, held *game.HeldItem, cp Counterparts, m *items.Manifest) (Outcome, error) {
	output, ok := cp.OutputInventory(action.Target)
	if !ok {
		return Outcome{Handled: true, Goal: game.Wander()}, nil
	}

	req := items.NewCount(action.Item, BatchSize)
	var n int
	err := output.Use(func(inv *items.Inventory) error {
		var err error
		n, err = inv.TransferItem(req, held.Inventory, m)
		return err
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("picking up %s from %s: %w", action.Item, action.Target, err)
	}

	o := Outcome{
		Handled:          true,
		CounterpartFound: true,
		Requested:        req.Count,
		Transferred:      n,
	}

	// Loaded up: go deliver. Room left: top off first.
	if held.IsFull(m) {
		o.Goal = game.DropOff(action.Item)
	} else {
		o.Goal = game.Pickup(action.Item)
	}
	return o, nil
}

func resolveDropOff(action game.UnitAction, held *game.HeldItem, cp Counterparts, m *items.Manifest) (Outcome, error) {
	input, ok := cp.InputInventory(action.Target)
	if !ok {
		return Outcome{Handled: true, Goal: game.Wander()}, nil
	}

	req := items.NewCount(action.Item, BatchSize)
	var n int
	err := input.Use(func(inv *items.Inventory) error {
		var err error
		n, err = held.TransferItem(req, inv, m)
		return err
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("dropping off %s at %s: %w", action.Item, action.Target, err)
	}

	o := Outcome{
		Handled:          true,
		CounterpartFound: true,
		Requested:        req.Count,
		Transferred:      n,
	}

	// Unloaded: find something else to do. Still holding: keep unloading.
	if held.IsEmpty() {
		o.Goal = game.Wander()
	} else {
		o.Goal = game.DropOff(action.Item)
	}
	return o, nil
}
