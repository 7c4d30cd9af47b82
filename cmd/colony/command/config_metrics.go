package command

import (
	"github.com/pixil98/go-colony/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsConfig configures the prometheus exporter. A zero port disables it.
type MetricsConfig struct {
	Port uint16 `json:"port"`
}

func (c *MetricsConfig) Enabled() bool {
	return c.Port != 0
}

func (c *MetricsConfig) buildExporter(g prometheus.Gatherer) *metrics.Exporter {
	return metrics.NewExporter(c.Port, g)
}
