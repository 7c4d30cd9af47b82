package items

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/pixil98/go-testutil"
)

func newTestInventory(t *testing.T, m *Manifest, capacity int, contents ...Count) *Inventory {
	t.Helper()

	inv, err := NewInventory(capacity)
	if err != nil {
		t.Fatalf("creating inventory: %v", err)
	}
	for _, c := range contents {
		n, err := inv.AddItem(c, m)
		if err != nil {
			t.Fatalf("adding %s: %v", c, err)
		}
		if n != c.Count {
			t.Fatalf("adding %s: only %d fit", c, n)
		}
	}
	return inv
}

func TestNewInventory(t *testing.T) {
	tests := map[string]struct {
		capacity int
		expErr   bool
	}{
		"single slot": {capacity: 1},
		"many slots":  {capacity: 8},
		"zero":        {capacity: 0, expErr: true},
		"negative":    {capacity: -3, expErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			inv, err := NewInventory(tt.capacity)
			if tt.expErr {
				if !errors.Is(err, ErrInvalidCapacity) {
					t.Fatalf("expected ErrInvalidCapacity, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "capacity", inv.Capacity(), tt.capacity)
			testutil.AssertEqual(t, "len", inv.Len(), 0)
			testutil.AssertEqual(t, "empty", inv.IsEmpty(), true)
		})
	}
}

func TestInventory_IsFull(t *testing.T) {
	m := newTestManifest(t, map[Id]int{"berry": 5, "leaf": 1})

	tests := map[string]struct {
		capacity int
		contents []Count
		exp      bool
	}{
		"empty single slot": {
			capacity: 1,
			exp:      false,
		},
		"partial stack": {
			capacity: 1,
			contents: []Count{NewCount("berry", 3)},
			exp:      false,
		},
		"full stack": {
			capacity: 1,
			contents: []Count{NewCount("berry", 5)},
			exp:      true,
		},
		"stack size one": {
			capacity: 1,
			contents: []Count{NewCount("leaf", 1)},
			exp:      true,
		},
		"free slot remaining": {
			capacity: 2,
			contents: []Count{NewCount("leaf", 1)},
			exp:      false,
		},
		"all slots full": {
			capacity: 2,
			contents: []Count{NewCount("leaf", 1), NewCount("berry", 5)},
			exp:      true,
		},
		"all slots occupied one partial": {
			capacity: 2,
			contents: []Count{NewCount("leaf", 1), NewCount("berry", 2)},
			exp:      false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			inv := newTestInventory(t, m, tt.capacity, tt.contents...)
			testutil.AssertEqual(t, "full", inv.IsFull(m), tt.exp)
		})
	}
}

func TestInventory_RemainingCapacity(t *testing.T) {
	m := newTestManifest(t, map[Id]int{"berry": 5, "leaf": 1})

	tests := map[string]struct {
		capacity int
		contents []Count
		item     Id
		exp      int
	}{
		"empty":               {capacity: 2, item: "berry", exp: 10},
		"partial matching":    {capacity: 1, contents: []Count{NewCount("berry", 2)}, item: "berry", exp: 3},
		"other item occupies": {capacity: 1, contents: []Count{NewCount("leaf", 1)}, item: "berry", exp: 0},
		"mixed":               {capacity: 3, contents: []Count{NewCount("leaf", 1), NewCount("berry", 4)}, item: "berry", exp: 6},
		"split stacks":        {capacity: 3, contents: []Count{NewCount("berry", 7)}, item: "berry", exp: 8},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			inv := newTestInventory(t, m, tt.capacity, tt.contents...)
			testutil.AssertEqual(t, "remaining", inv.RemainingCapacity(tt.item, m), tt.exp)
		})
	}
}

func TestInventory_TransferItem(t *testing.T) {
	m := newTestManifest(t, map[Id]int{"berry": 5, "leaf": 1})

	tests := map[string]struct {
		src       []Count
		srcCap    int
		dst       []Count
		dstCap    int
		req       Count
		expN      int
		expSrc    int
		expDst    int
		expDstLen int
	}{
		"full request satisfied": {
			src: []Count{NewCount("berry", 4)}, srcCap: 1,
			dstCap: 1,
			req:    NewCount("berry", 3),
			expN:   3, expSrc: 1, expDst: 3, expDstLen: 1,
		},
		"bounded by source": {
			src: []Count{NewCount("berry", 2)}, srcCap: 1,
			dstCap: 1,
			req:    NewCount("berry", 5),
			expN:   2, expSrc: 0, expDst: 2, expDstLen: 1,
		},
		"bounded by destination headroom": {
			src: []Count{NewCount("berry", 5)}, srcCap: 1,
			dst: []Count{NewCount("berry", 4)}, dstCap: 1,
			req:  NewCount("berry", 3),
			expN: 1, expSrc: 4, expDst: 5, expDstLen: 1,
		},
		"destination full": {
			src: []Count{NewCount("berry", 5)}, srcCap: 1,
			dst: []Count{NewCount("berry", 5)}, dstCap: 1,
			req:  NewCount("berry", 1),
			expN: 0, expSrc: 5, expDst: 5, expDstLen: 1,
		},
		"destination holds other item": {
			src: []Count{NewCount("berry", 5)}, srcCap: 1,
			dst: []Count{NewCount("leaf", 1)}, dstCap: 1,
			req:  NewCount("berry", 1),
			expN: 0, expSrc: 5, expDst: 0, expDstLen: 1,
		},
		"source empty": {
			srcCap: 1,
			dstCap: 1,
			req:    NewCount("berry", 1),
			expN:   0, expSrc: 0, expDst: 0, expDstLen: 0,
		},
		"tops off before opening new slot": {
			src: []Count{NewCount("berry", 5)}, srcCap: 1,
			dst: []Count{NewCount("berry", 3)}, dstCap: 2,
			req:  NewCount("berry", 4),
			expN: 4, expSrc: 1, expDst: 7, expDstLen: 2,
		},
		"zero requested": {
			src: []Count{NewCount("berry", 5)}, srcCap: 1,
			dstCap: 1,
			req:    NewCount("berry", 0),
			expN:   0, expSrc: 5, expDst: 0, expDstLen: 0,
		},
		"negative requested": {
			src: []Count{NewCount("berry", 5)}, srcCap: 1,
			dstCap: 1,
			req:    NewCount("berry", -2),
			expN:   0, expSrc: 5, expDst: 0, expDstLen: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			src := newTestInventory(t, m, tt.srcCap, tt.src...)
			dst := newTestInventory(t, m, tt.dstCap, tt.dst...)

			n, err := src.TransferItem(tt.req, dst, m)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.AssertEqual(t, "transferred", n, tt.expN)
			testutil.AssertEqual(t, "source count", src.Count(tt.req.Item), tt.expSrc)
			testutil.AssertEqual(t, "destination count", dst.Count(tt.req.Item), tt.expDst)
			testutil.AssertEqual(t, "destination slots", dst.Len(), tt.expDstLen)
		})
	}
}

func TestInventory_TransferItemUnknown(t *testing.T) {
	m := newTestManifest(t, map[Id]int{"berry": 5})

	src := newTestInventory(t, m, 1, NewCount("berry", 3))
	dst := newTestInventory(t, m, 1, NewCount("berry", 1))

	n, err := src.TransferItem(NewCount("rock", 1), dst, m)
	if !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}

	testutil.AssertEqual(t, "transferred", n, 0)
	testutil.AssertEqual(t, "source count", src.Count("berry"), 3)
	testutil.AssertEqual(t, "destination count", dst.Count("berry"), 1)
	testutil.AssertEqual(t, "source slots", src.Len(), 1)
	testutil.AssertEqual(t, "destination slots", dst.Len(), 1)
}

func TestInventory_TransferItemToSelf(t *testing.T) {
	m := newTestManifest(t, map[Id]int{"berry": 5})
	inv := newTestInventory(t, m, 2, NewCount("berry", 3))

	n, err := inv.TransferItem(NewCount("berry", 2), inv, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "transferred", n, 0)
	testutil.AssertEqual(t, "count", inv.Count("berry"), 3)
}

func TestInventory_RemoveItem(t *testing.T) {
	m := newTestManifest(t, map[Id]int{"berry": 5, "leaf": 1})

	inv := newTestInventory(t, m, 3, NewCount("berry", 5), NewCount("leaf", 1), NewCount("berry", 2))

	n := inv.RemoveItem(NewCount("berry", 3))
	testutil.AssertEqual(t, "removed", n, 3)
	testutil.AssertEqual(t, "berry left", inv.Count("berry"), 4)
	testutil.AssertEqual(t, "slots", inv.Len(), 2)

	// Earlier stacks are left full; the trailing stack is drained first.
	slots := inv.Slots()
	testutil.AssertEqual(t, "first slot", slots[0].Count(), 4)
	testutil.AssertEqual(t, "second slot item", slots[1].ItemId(), Id("leaf"))

	n = inv.RemoveItem(NewCount("leaf", 10))
	testutil.AssertEqual(t, "removed leaf", n, 1)
	testutil.AssertEqual(t, "slots after leaf", inv.Len(), 1)

	n = inv.RemoveItem(NewCount("rock", 1))
	testutil.AssertEqual(t, "removed rock", n, 0)

	inv.Clear()
	testutil.AssertEqual(t, "empty after clear", inv.IsEmpty(), true)
}

func TestInventory_AddItem(t *testing.T) {
	m := newTestManifest(t, map[Id]int{"berry": 5})

	inv := newTestInventory(t, m, 2)

	n, err := inv.AddItem(NewCount("berry", 12), m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "added", n, 10)
	testutil.AssertEqual(t, "slots", inv.Len(), 2)

	_, err = inv.AddItem(NewCount("rock", 1), m)
	if !errors.Is(err, ErrUnknownItem) {
		t.Errorf("expected ErrUnknownItem, got %v", err)
	}

	_, err = inv.AddItem(NewCount("berry", -1), m)
	if !errors.Is(err, ErrNegativeQuantity) {
		t.Errorf("expected ErrNegativeQuantity, got %v", err)
	}
}

func TestInventory_Slots_ReturnsCopy(t *testing.T) {
	m := newTestManifest(t, map[Id]int{"berry": 5})
	inv := newTestInventory(t, m, 1, NewCount("berry", 2))

	slots := inv.Slots()
	slots[0] = Slot{item: "berry", count: 5}

	testutil.AssertEqual(t, "count", inv.Count("berry"), 2)
}

// Random transfer sequences must never break slot or stack bounds, and every
// transfer must conserve the total across both inventories.
func TestInventory_TransferInvariants(t *testing.T) {
	stacks := map[Id]int{"berry": 5, "leaf": 1, "stone": 3}
	m := newTestManifest(t, stacks)
	ids := m.Ids()

	rng := rand.New(rand.NewSource(42))
	invs := []*Inventory{
		newTestInventory(t, m, 1),
		newTestInventory(t, m, 2, NewCount("berry", 7)),
		newTestInventory(t, m, 3, NewCount("stone", 6), NewCount("leaf", 1)),
	}

	for step := 0; step < 2000; step++ {
		src := invs[rng.Intn(len(invs))]
		dst := invs[rng.Intn(len(invs))]
		id := ids[rng.Intn(len(ids))]
		req := NewCount(id, rng.Intn(8))

		before := src.Count(id) + dst.Count(id)
		srcBefore := src.Count(id)

		n, err := src.TransferItem(req, dst, m)
		if err != nil {
			t.Fatalf("step %d: unexpected error: %v", step, err)
		}
		if n < 0 || n > req.Count {
			t.Fatalf("step %d: transferred %d for request %s", step, n, req)
		}
		if src != dst {
			if src.Count(id) != srcBefore-n {
				t.Fatalf("step %d: source lost %d, reported %d", step, srcBefore-src.Count(id), n)
			}
		}
		if after := src.Count(id) + dst.Count(id); after != before {
			t.Fatalf("step %d: total changed from %d to %d", step, before, after)
		}

		for i, inv := range invs {
			if inv.Len() > inv.Capacity() {
				t.Fatalf("step %d: inventory %d holds %d slots, capacity %d", step, i, inv.Len(), inv.Capacity())
			}
			for _, s := range inv.Slots() {
				if s.Count() < 1 || s.Count() > stacks[s.ItemId()] {
					t.Fatalf("step %d: inventory %d has slot %s out of bounds", step, i, s)
				}
			}
		}
	}
}

func TestInventory_Clone(t *testing.T) {
	m := newTestManifest(t, map[Id]int{"berry": 5})
	inv := newTestInventory(t, m, 2, NewCount("berry", 3))

	cp := inv.Clone()
	if _, err := cp.AddItem(NewCount("berry", 4), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "original count", inv.Count("berry"), 3)
	testutil.AssertEqual(t, "clone count", cp.Count("berry"), 7)
	testutil.AssertEqual(t, "clone capacity", cp.Capacity(), 2)
}
