package game

import (
	"fmt"

	"github.com/pixil98/go-colony/internal/items"
)

// GoalKind enumerates the high-level intents a unit can hold.
type GoalKind int

const (
	GoalWander GoalKind = iota
	GoalPickup
	GoalDropOff
)

func (k GoalKind) String() string {
	switch k {
	case GoalWander:
		return "wander"
	case GoalPickup:
		return "pickup"
	case GoalDropOff:
		return "dropoff"
	default:
		return fmt.Sprintf("goal(%d)", int(k))
	}
}

func (k GoalKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *GoalKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "wander":
		*k = GoalWander
	case "pickup":
		*k = GoalPickup
	case "dropoff":
		*k = GoalDropOff
	default:
		return fmt.Errorf("unknown goal kind: %s", text)
	}
	return nil
}

// Goal is a unit's current intent. Item is set for Pickup and DropOff only.
// A unit holds exactly one goal; a new goal replaces the old one.
type Goal struct {
	Kind GoalKind `json:"kind" yaml:"kind"`
	Item items.Id `json:"item,omitempty" yaml:"item,omitempty"`
}

func Wander() Goal {
	return Goal{Kind: GoalWander}
}

func Pickup(id items.Id) Goal {
	return Goal{Kind: GoalPickup, Item: id}
}

func DropOff(id items.Id) Goal {
	return Goal{Kind: GoalDropOff, Item: id}
}

// Validate checks that item-bearing goals carry an item and wander does not.
func (g Goal) Validate() error {
	switch g.Kind {
	case GoalWander:
		if g.Item != "" {
			return fmt.Errorf("wander goal must not name an item")
		}
	case GoalPickup, GoalDropOff:
		if g.Item == "" {
			return fmt.Errorf("%s goal requires an item", g.Kind)
		}
	default:
		return fmt.Errorf("invalid goal kind %d", int(g.Kind))
	}
	return nil
}

func (g Goal) String() string {
	if g.Kind == GoalWander {
		return g.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", g.Kind, g.Item)
}
