package driver

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const (
	DefaultTickLength = time.Second
)

// Ticker is one stage of the simulation, run once per tick.
type Ticker interface {
	Tick(context.Context) error
}

// Driver runs its tickers in order on a fixed interval.
type Driver struct {
	tickLength time.Duration
	tickers    []Ticker
	tick       uint64
}

func NewDriver(tickers []Ticker, opts ...DriverOpt) *Driver {
	d := &Driver{
		tickLength: DefaultTickLength,
		tickers:    tickers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *Driver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()

	slog.InfoContext(ctx, "driver started", "tick_length", d.tickLength, "stages", len(d.tickers))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			err := d.Tick(ctx)
			if err != nil {
				slog.ErrorContext(ctx, "tick failed", "tick", d.tick, "error", err)
				return err
			}
		}
	}
}

// Tick runs every ticker once, stopping at the first error.
func (d *Driver) Tick(ctx context.Context) error {
	d.tick++
	for i, t := range d.tickers {
		if err := t.Tick(ctx); err != nil {
			return fmt.Errorf("tick %d stage %d: %w", d.tick, i, err)
		}
	}
	return nil
}

// Ticks returns how many ticks have run.
func (d *Driver) Ticks() uint64 {
	return d.tick
}
