package logistics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/pixil98/go-colony/internal/game"
	"github.com/pixil98/go-colony/internal/items"
	"github.com/pixil98/go-errors"
)

// Recorder observes resolved actions, e.g. for metrics.
type Recorder interface {
	RecordTransfer(action game.ActionKind, item items.Id, n int)
	RecordMissingCounterpart(action game.ActionKind)
	RecordGoal(goal game.Goal)
}

// System resolves every finished pickup and drop-off once per tick.
type System struct {
	world     *game.WorldState
	manifest  *items.Manifest
	workers   int
	publisher game.Publisher
	recorder  Recorder
}

type SystemOpt func(*System)

func NewSystem(world *game.WorldState, manifest *items.Manifest, opts ...SystemOpt) *System {
	s := &System{
		world:    world,
		manifest: manifest,
		workers:  runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers < 1 {
		s.workers = 1
	}
	return s
}

// WithWorkers sets how many units are processed concurrently.
func WithWorkers(n int) SystemOpt {
	return func(s *System) {
		s.workers = n
	}
}

func WithPublisher(p game.Publisher) SystemOpt {
	return func(s *System) {
		s.publisher = p
	}
}

func WithRecorder(r Recorder) SystemOpt {
	return func(s *System) {
		s.recorder = r
	}
}

// Tick processes all units. Each unit is owned by one worker for the whole
// of its transfer and goal write; structure inventories serialize concurrent
// transfers themselves. Errors from every unit are returned together.
func (s *System) Tick(ctx context.Context) error {
	units := s.world.Units()
	if len(units) == 0 {
		return nil
	}

	errs := make([]error, len(units))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range min(s.workers, len(units)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				errs[i] = s.process(ctx, units[i])
			}
		}()
	}

	for i := range units {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	el := errors.NewErrorList()
	for i, err := range errs {
		if err != nil {
			el.Add(fmt.Errorf("unit %s: %w", units[i].Id, err))
		}
	}
	return el.Err()
}

func (s *System) process(ctx context.Context, u *game.UnitInstance) error {
	if !u.Action.Finished() {
		return nil
	}

	action := u.Action.Action()
	o, err := Resolve(action, u.Held, s.world, s.manifest)
	if err != nil {
		return err
	}
	if !o.Handled {
		return nil
	}

	u.Goal = o.Goal

	if !o.CounterpartFound {
		slog.DebugContext(ctx, "action target missing", "unit", u.Id, "action", action)
	}
	s.record(action, o)
	s.publish(ctx, u, action, o)

	return nil
}

func (s *System) record(action game.UnitAction, o Outcome) {
	if s.recorder == nil {
		return
	}
	if o.CounterpartFound {
		s.recorder.RecordTransfer(action.Kind, action.Item, o.Transferred)
	} else {
		s.recorder.RecordMissingCounterpart(action.Kind)
	}
	s.recorder.RecordGoal(o.Goal)
}

func (s *System) publish(ctx context.Context, u *game.UnitInstance, action game.UnitAction, o Outcome) {
	if s.publisher == nil {
		return
	}

	data, err := json.Marshal(TransferEvent{
		Unit:             u.Id,
		Action:           action.Kind.String(),
		Item:             action.Item,
		Structure:        action.Target,
		CounterpartFound: o.CounterpartFound,
		Requested:        o.Requested,
		Transferred:      o.Transferred,
		Held:             u.Held.Quantity(),
		Goal:             o.Goal,
	})
	if err != nil {
		slog.WarnContext(ctx, "encoding transfer event", "unit", u.Id, "error", err)
		return
	}

	if err := s.publisher.Publish(Subject(u.Id), data); err != nil {
		slog.WarnContext(ctx, "publishing transfer event", "unit", u.Id, "error", err)
	}
}
