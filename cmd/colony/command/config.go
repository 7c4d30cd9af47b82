package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

const minTickInterval = 10 * time.Millisecond

type Config struct {
	TickInterval string        `json:"tick_interval"`
	ActionTicks  int           `json:"action_ticks"`
	Workers      int           `json:"workers"`
	Storage      StorageConfig `json:"storage"`
	Seed         SeedConfig    `json:"seed"`
	Nats         NatsConfig    `json:"nats"`
	Metrics      MetricsConfig `json:"metrics"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	_, err := c.tickLength()
	el.Add(err)

	if c.ActionTicks < 0 {
		el.Add(fmt.Errorf("action_ticks must not be negative"))
	}
	if c.Workers < 0 {
		el.Add(fmt.Errorf("workers must not be negative"))
	}

	el.Add(c.Storage.validate())
	el.Add(c.Seed.validate())
	el.Add(c.Nats.validate())

	return el.Err()
}

func (c *Config) tickLength() (time.Duration, error) {
	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		return 0, fmt.Errorf("parsing tick_interval: %w", err)
	}
	if d < minTickInterval {
		return 0, fmt.Errorf("tick_interval must be at least %s", minTickInterval)
	}
	return d, nil
}
