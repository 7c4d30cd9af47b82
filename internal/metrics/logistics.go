package metrics

import (
	"github.com/pixil98/go-colony/internal/game"
	"github.com/pixil98/go-colony/internal/items"
	"github.com/prometheus/client_golang/prometheus"
)

// Logistics records resolved pickups and drop-offs.
type Logistics struct {
	transfers          *prometheus.CounterVec
	itemsTransferred   *prometheus.CounterVec
	missingCounterpart *prometheus.CounterVec
	goalTransitions    *prometheus.CounterVec
}

// NewLogistics creates the logistics collectors and registers them with reg.
func NewLogistics(reg prometheus.Registerer) (*Logistics, error) {
	l := &Logistics{
		transfers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "colony_transfers_total",
				Help: "Number of transfers attempted by action.",
			},
			[]string{"action"},
		),
		itemsTransferred: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "colony_items_transferred_total",
				Help: "Number of items moved by action and item.",
			},
			[]string{"action", "item"},
		),
		missingCounterpart: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "colony_missing_counterpart_total",
				Help: "Number of finished actions whose target structure could not be resolved.",
			},
			[]string{"action"},
		),
		goalTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "colony_goal_transitions_total",
				Help: "Number of goals written after a resolved action, by goal kind.",
			},
			[]string{"goal"},
		),
	}

	for _, c := range []prometheus.Collector{
		l.transfers,
		l.itemsTransferred,
		l.missingCounterpart,
		l.goalTransitions,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return l, nil
}

func (l *Logistics) RecordTransfer(action game.ActionKind, item items.Id, n int) {
	l.transfers.WithLabelValues(action.String()).Inc()
	l.itemsTransferred.WithLabelValues(action.String(), item.String()).Add(float64(n))
}

func (l *Logistics) RecordMissingCounterpart(action game.ActionKind) {
	l.missingCounterpart.WithLabelValues(action.String()).Inc()
}

func (l *Logistics) RecordGoal(goal game.Goal) {
	l.goalTransitions.WithLabelValues(goal.Kind.String()).Inc()
}
