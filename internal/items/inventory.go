package items

import "fmt"

// Inventory is a fixed-capacity, ordered collection of item slots. Capacity
// counts distinct slots, not items. Empty slots are dropped, so every slot
// held by an inventory has a count of at least one.
type Inventory struct {
	capacity int
	slots    []Slot
}

// NewInventory creates an empty inventory with the given slot capacity.
func NewInventory(capacity int) (*Inventory, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	return &Inventory{
		capacity: capacity,
		slots:    make([]Slot, 0, capacity),
	}, nil
}

// MustNewInventory is NewInventory for capacities known to be valid.
func MustNewInventory(capacity int) *Inventory {
	inv, err := NewInventory(capacity)
	if err != nil {
		panic(err)
	}
	return inv
}

// Capacity returns the maximum number of occupied slots.
func (inv *Inventory) Capacity() int {
	return inv.capacity
}

// Len returns the number of occupied slots.
func (inv *Inventory) Len() int {
	return len(inv.slots)
}

// Slots returns a copy of the occupied slots in order.
func (inv *Inventory) Slots() []Slot {
	out := make([]Slot, len(inv.slots))
	copy(out, inv.slots)
	return out
}

// Count returns the total number of items of type id held across all slots.
func (inv *Inventory) Count(id Id) int {
	total := 0
	for _, s := range inv.slots {
		if s.item == id {
			total += s.count
		}
	}
	return total
}

func (inv *Inventory) IsEmpty() bool {
	return len(inv.slots) == 0
}

// IsFull reports whether every slot is occupied and each holds its item's max
// stack size, meaning nothing of any type can be accepted.
func (inv *Inventory) IsFull(m *Manifest) bool {
	if len(inv.slots) < inv.capacity {
		return false
	}
	for _, s := range inv.slots {
		if s.count < m.MaxStackSize(s.item) {
			return false
		}
	}
	return true
}

// RemainingCapacity returns how many more items of type id the inventory can
// accept: the headroom in matching slots plus a full stack per free slot.
func (inv *Inventory) RemainingCapacity(id Id, m *Manifest) int {
	stack := m.MaxStackSize(id)

	room := (inv.capacity - len(inv.slots)) * stack
	for _, s := range inv.slots {
		if s.item == id {
			room += stack - s.count
		}
	}
	return room
}

// TransferItem moves up to req.Count items of type req.Item from inv into dst
// and returns how many moved. The amount is bounded by what inv holds and by
// what dst can accept, and may be zero; a short transfer is not an error.
// An item absent from the manifest fails with ErrUnknownItem and neither
// inventory is changed.
func (inv *Inventory) TransferItem(req Count, dst *Inventory, m *Manifest) (int, error) {
	def, ok := m.Lookup(req.Item)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownItem, req.Item)
	}
	if inv == dst {
		return 0, nil
	}

	n := min(req.Count, inv.Count(req.Item), dst.RemainingCapacity(req.Item, m))
	if n <= 0 {
		return 0, nil
	}

	inv.remove(req.Item, n)
	dst.add(req.Item, n, def.MaxStackSize)

	return n, nil
}

// AddItem adds as many of c as fit and returns the number added. Used by
// collaborators that create items rather than move them.
func (inv *Inventory) AddItem(c Count, m *Manifest) (int, error) {
	def, ok := m.Lookup(c.Item)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownItem, c.Item)
	}
	if c.Count < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeQuantity, c.Count)
	}

	n := min(c.Count, inv.RemainingCapacity(c.Item, m))
	if n <= 0 {
		return 0, nil
	}
	inv.add(c.Item, n, def.MaxStackSize)
	return n, nil
}

// RemoveItem removes up to c.Count items of type c.Item and returns the
// number removed.
func (inv *Inventory) RemoveItem(c Count) int {
	n := min(c.Count, inv.Count(c.Item))
	if n <= 0 {
		return 0
	}
	inv.remove(c.Item, n)
	return n
}

// Clone returns an independent copy with the same capacity and contents.
func (inv *Inventory) Clone() *Inventory {
	return &Inventory{
		capacity: inv.capacity,
		slots:    append(make([]Slot, 0, inv.capacity), inv.slots...),
	}
}

// Clear empties the inventory.
func (inv *Inventory) Clear() {
	inv.slots = inv.slots[:0]
}

func (inv *Inventory) String() string {
	return fmt.Sprintf("%v/%d", inv.slots, inv.capacity)
}

// add places n items of type id, topping off matching slots before opening
// new ones. Callers must have checked RemainingCapacity.
func (inv *Inventory) add(id Id, n int, stack int) {
	for i := range inv.slots {
		if n == 0 {
			return
		}
		if inv.slots[i].item != id {
			continue
		}
		take := min(n, stack-inv.slots[i].count)
		inv.slots[i].count += take
		n -= take
	}

	for n > 0 && len(inv.slots) < inv.capacity {
		take := min(n, stack)
		inv.slots = append(inv.slots, Slot{item: id, count: take})
		n -= take
	}
}

// remove takes n items of type id starting from the last matching slot, so
// earlier stacks stay full. Callers must have checked Count.
func (inv *Inventory) remove(id Id, n int) {
	for i := len(inv.slots) - 1; i >= 0 && n > 0; i-- {
		if inv.slots[i].item != id {
			continue
		}
		take := min(n, inv.slots[i].count)
		inv.slots[i].count -= take
		n -= take
	}

	kept := inv.slots[:0]
	for _, s := range inv.slots {
		if s.count > 0 {
			kept = append(kept, s)
		}
	}
	inv.slots = kept
}
