package command

import (
	"context"
	"fmt"

	"github.com/pixil98/go-colony/internal/driver"
	"github.com/pixil98/go-colony/internal/game"
	"github.com/pixil98/go-colony/internal/logistics"
	"github.com/pixil98/go-colony/internal/metrics"
	"github.com/pixil98/go-service/service"
	"github.com/prometheus/client_golang/prometheus"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	tickLength, err := cfg.tickLength()
	if err != nil {
		return nil, err
	}

	// Load definitions and the starting world
	cat, err := cfg.Storage.BuildCatalog()
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	seed, err := cfg.Seed.Load()
	if err != nil {
		return nil, err
	}

	world := game.NewWorldState()
	err = seed.Populate(context.Background(), world, cat)
	if err != nil {
		return nil, fmt.Errorf("seeding world: %w", err)
	}

	// Event bus
	nats, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	// Metrics
	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewLogistics(reg)
	if err != nil {
		return nil, fmt.Errorf("registering metrics: %w", err)
	}

	// Setup the colony driver
	var actionOpts []game.ActionTickerOpt
	if cfg.ActionTicks > 0 {
		actionOpts = append(actionOpts, game.WithActionTicks(cfg.ActionTicks))
	}
	sysOpts := []logistics.SystemOpt{
		logistics.WithPublisher(nats),
		logistics.WithRecorder(recorder),
	}
	if cfg.Workers > 0 {
		sysOpts = append(sysOpts, logistics.WithWorkers(cfg.Workers))
	}

	d := driver.NewDriver([]driver.Ticker{
		game.NewActionTicker(world, cat.Manifest, actionOpts...),
		logistics.NewSystem(world, cat.Manifest, sysOpts...),
		game.NewProductionTicker(world, cat.Manifest),
	}, driver.WithTickLength(tickLength))

	workers := service.WorkerList{
		"nats":   nats,
		"driver": &afterReady{ready: nats.Ready(), next: d},
	}
	if cfg.Metrics.Enabled() {
		workers["metrics"] = cfg.Metrics.buildExporter(reg)
	}

	return workers, nil
}

type starter interface {
	Start(ctx context.Context) error
}

// afterReady holds back a worker until a dependency signals it is ready.
type afterReady struct {
	ready <-chan struct{}
	next  starter
}

func (a *afterReady) Start(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return nil
	case <-a.ready:
	}
	return a.next.Start(ctx)
}
