package game

import "github.com/pixil98/go-colony/internal/items"

// HeldItem is what a unit carries: a single-slot inventory, so at most one
// kind of item at a time.
type HeldItem struct {
	*items.Inventory
}

func NewHeldItem() *HeldItem {
	return &HeldItem{Inventory: items.MustNewInventory(1)}
}

// ItemSlot returns the held slot, if anything is held.
func (h *HeldItem) ItemSlot() (items.Slot, bool) {
	slots := h.Slots()
	if len(slots) == 0 {
		return items.Slot{}, false
	}
	return slots[0], true
}

// ItemId returns the type of item held, if any.
func (h *HeldItem) ItemId() (items.Id, bool) {
	s, ok := h.ItemSlot()
	if !ok {
		return "", false
	}
	return s.ItemId(), true
}

// Quantity returns how many items are held.
func (h *HeldItem) Quantity() int {
	s, ok := h.ItemSlot()
	if !ok {
		return 0
	}
	return s.Count()
}
