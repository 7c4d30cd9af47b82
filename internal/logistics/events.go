package logistics

import (
	"fmt"

	"github.com/pixil98/go-colony/internal/game"
	"github.com/pixil98/go-colony/internal/items"
)

// TransferEvent is published once per resolved pickup or drop-off.
type TransferEvent struct {
	Unit             game.EntityId `json:"unit"`
	Action           string        `json:"action"`
	Item             items.Id      `json:"item"`
	Structure        game.EntityId `json:"structure"`
	CounterpartFound bool          `json:"counterpart_found"`
	Requested        int           `json:"requested"`
	Transferred      int           `json:"transferred"`
	Held             int           `json:"held"`
	Goal             game.Goal     `json:"goal"`
}

// Subject returns the subject transfer events for a unit are published on.
func Subject(unit game.EntityId) string {
	return fmt.Sprintf("logistics.%s", unit)
}
