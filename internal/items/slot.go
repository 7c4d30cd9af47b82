package items

import "fmt"

// Count is a requested or actual quantity of one item type. It has no upper
// bound of its own; bounding happens in Inventory.
type Count struct {
	Item  Id  `json:"item" yaml:"item"`
	Count int `json:"count" yaml:"count"`
}

// NewCount creates a Count of n items of type id.
func NewCount(id Id, n int) Count {
	return Count{Item: id, Count: n}
}

func (c Count) String() string {
	return fmt.Sprintf("%dx%s", c.Count, c.Item)
}

// Slot holds between zero and the max stack size of a single item type.
type Slot struct {
	item  Id
	count int
}

// NewSlot creates a slot, failing if count is negative, the item is unknown,
// or count exceeds the item's max stack size.
func NewSlot(id Id, count int, m *Manifest) (Slot, error) {
	def, ok := m.Lookup(id)
	if !ok {
		return Slot{}, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	if count < 0 {
		return Slot{}, fmt.Errorf("%w: %d", ErrNegativeQuantity, count)
	}
	if count > def.MaxStackSize {
		return Slot{}, fmt.Errorf("%w: %d of %q (max %d)", ErrStackOverflow, count, id, def.MaxStackSize)
	}
	return Slot{item: id, count: count}, nil
}

func (s Slot) ItemId() Id {
	return s.item
}

func (s Slot) Count() int {
	return s.count
}

// IsEmpty reports whether the slot holds nothing. An empty slot is treated as absent.
func (s Slot) IsEmpty() bool {
	return s.count == 0
}

func (s Slot) String() string {
	return fmt.Sprintf("%dx%s", s.count, s.item)
}
