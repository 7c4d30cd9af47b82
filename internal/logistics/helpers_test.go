package logistics

import (
	"sync"
	"testing"

	"github.com/pixil98/go-colony/internal/game"
	"github.com/pixil98/go-colony/internal/items"
	"github.com/pixil98/go-colony/internal/storage"
)

func newTestManifest(t *testing.T, stacks map[items.Id]int) *items.Manifest {
	t.Helper()

	defs := make(map[items.Id]*items.Item, len(stacks))
	for id, n := range stacks {
		defs[id] = &items.Item{Name: string(id), MaxStackSize: n}
	}
	m, err := items.NewManifest(defs)
	if err != nil {
		t.Fatalf("building manifest: %v", err)
	}
	return m
}

func newTestStructure(t *testing.T, name string, inCap, outCap int) *game.StructureInstance {
	t.Helper()

	def := &game.Structure{Name: name, InputCapacity: inCap, OutputCapacity: outCap}
	si, err := game.NewStructureInstance(name, storage.NewResolvedSmartIdentifier(name, def))
	if err != nil {
		t.Fatalf("creating structure %q: %v", name, err)
	}
	return si
}

func stock(t *testing.T, m *items.Manifest, use func(func(*items.Inventory) error) error, c items.Count) {
	t.Helper()

	err := use(func(inv *items.Inventory) error {
		_, err := inv.AddItem(c, m)
		return err
	})
	if err != nil {
		t.Fatalf("stocking %s: %v", c, err)
	}
}

func countIn(t *testing.T, use func(func(*items.Inventory) error) error, id items.Id) int {
	t.Helper()

	var n int
	_ = use(func(inv *items.Inventory) error {
		n = inv.Count(id)
		return nil
	})
	return n
}

func newTestHeld(t *testing.T, m *items.Manifest, contents ...items.Count) *game.HeldItem {
	t.Helper()

	h := game.NewHeldItem()
	for _, c := range contents {
		if _, err := h.AddItem(c, m); err != nil {
			t.Fatalf("holding %s: %v", c, err)
		}
	}
	return h
}

// recordingPublisher captures published messages by subject.
type recordingPublisher struct {
	mu   sync.Mutex
	msgs map[string][][]byte
}

func (p *recordingPublisher) Publish(subject string, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.msgs == nil {
		p.msgs = map[string][][]byte{}
	}
	p.msgs[subject] = append(p.msgs[subject], data)
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, m := range p.msgs {
		n += len(m)
	}
	return n
}

// recordingRecorder tallies recorder calls.
type recordingRecorder struct {
	mu          sync.Mutex
	transferred map[game.ActionKind]int
	missing     map[game.ActionKind]int
	goals       map[game.GoalKind]int
}

func newRecordingRecorder() *recordingRecorder {
	return &recordingRecorder{
		transferred: map[game.ActionKind]int{},
		missing:     map[game.ActionKind]int{},
		goals:       map[game.GoalKind]int{},
	}
}

func (r *recordingRecorder) RecordTransfer(action game.ActionKind, _ items.Id, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transferred[action] += n
}

func (r *recordingRecorder) RecordMissingCounterpart(action game.ActionKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.missing[action]++
}

func (r *recordingRecorder) RecordGoal(goal game.Goal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.goals[goal.Kind]++
}
