package game

import (
	"fmt"

	"github.com/pixil98/go-colony/internal/items"
)

// ActionKind enumerates what a unit can be doing right now.
type ActionKind int

const (
	ActionIdle ActionKind = iota
	ActionPickUp
	ActionDropOff
)

func (k ActionKind) String() string {
	switch k {
	case ActionIdle:
		return "idle"
	case ActionPickUp:
		return "pickup"
	case ActionDropOff:
		return "dropoff"
	default:
		return fmt.Sprintf("action(%d)", int(k))
	}
}

// UnitAction is a single step a unit performs. For PickUp, Target is the
// structure whose output is drawn from; for DropOff, the structure whose
// input is filled.
type UnitAction struct {
	Kind   ActionKind
	Item   items.Id
	Target EntityId
}

func Idle() UnitAction {
	return UnitAction{Kind: ActionIdle}
}

func PickUp(id items.Id, output EntityId) UnitAction {
	return UnitAction{Kind: ActionPickUp, Item: id, Target: output}
}

func DropOffAt(id items.Id, input EntityId) UnitAction {
	return UnitAction{Kind: ActionDropOff, Item: id, Target: input}
}

func (a UnitAction) String() string {
	if a.Kind == ActionIdle {
		return a.Kind.String()
	}
	return fmt.Sprintf("%s(%s@%s)", a.Kind, a.Item, a.Target)
}

// CurrentAction tracks an action and its progress. Whether it has finished
// is decided by whoever advances it, never by the logistics system.
type CurrentAction struct {
	action   UnitAction
	duration int
	elapsed  int
}

// NewCurrentAction starts action a, which finishes after duration advances.
// Durations below one are treated as one.
func NewCurrentAction(a UnitAction, duration int) *CurrentAction {
	return &CurrentAction{
		action:   a,
		duration: max(duration, 1),
	}
}

// FinishedAction returns an action that has already completed.
func FinishedAction(a UnitAction) *CurrentAction {
	return &CurrentAction{action: a, duration: 1, elapsed: 1}
}

func (c *CurrentAction) Action() UnitAction {
	return c.action
}

func (c *CurrentAction) Finished() bool {
	return c.elapsed >= c.duration
}

// Advance moves the action one tick closer to completion.
func (c *CurrentAction) Advance() {
	if c.elapsed < c.duration {
		c.elapsed++
	}
}

// Replace swaps in a new action and resets progress.
func (c *CurrentAction) Replace(a UnitAction, duration int) {
	c.action = a
	c.duration = max(duration, 1)
	c.elapsed = 0
}
