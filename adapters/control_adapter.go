// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Control adapter implementing api.Control using control package primitives.

package adapters

import (
	"sync"

	"github.com/momentics/hioload-irq/api"
	"github.com/momentics/hioload-irq/control"
)

// ControlAdapter aggregates the observability surfaces of a dispatcher:
// a config snapshot, the metrics registry, and the debug probe registry.
// SetConfig mutates the snapshot only; the dispatcher's effective
// configuration is immutable once Run begins.
type ControlAdapter struct {
	mu      sync.RWMutex
	config  map[string]any
	metrics *control.MetricsRegistry
	debug   *control.DebugProbes
}

// NewControlAdapter builds a Control surface seeded from cfg.
func NewControlAdapter(cfg *control.Config) *ControlAdapter {
	if cfg == nil {
		cfg = control.DefaultConfig()
	}
	return &ControlAdapter{
		config:  cfg.Snapshot(),
		metrics: control.NewMetricsRegistry(),
		debug:   control.NewDebugProbes(),
	}
}

var _ api.Control = (*ControlAdapter)(nil)

func (c *ControlAdapter) GetConfig() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]any, len(c.config))
	for k, v := range c.config {
		out[k] = v
	}
	return out
}

func (c *ControlAdapter) SetConfig(cfg map[string]any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range cfg {
		c.config[k] = v
	}
	return nil
}

func (c *ControlAdapter) Stats() map[string]any {
	stats := c.metrics.GetSnapshot()
	debugStats := c.debug.DumpState()
	combined := make(map[string]any)
	for k, v := range stats {
		combined[k] = v
	}
	for k, v := range debugStats {
		combined["debug."+k] = v
	}
	return combined
}

func (c *ControlAdapter) RegisterDebugProbe(name string, fn func() any) {
	c.debug.RegisterProbe(name, fn)
}

// Metrics returns the underlying metrics registry for dispatcher wiring.
func (c *ControlAdapter) Metrics() *control.MetricsRegistry { return c.metrics }

// Debug returns the underlying probe registry for dispatcher wiring.
func (c *ControlAdapter) Debug() *control.DebugProbes { return c.debug }
