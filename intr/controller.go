// File: intr/controller.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lifecycle controller for the dispatch subsystem: registration gate,
// startup rendezvous, raise API, and orderly shutdown.

package intr

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-irq/api"
	"github.com/momentics/hioload-irq/control"
)

// State is the dispatcher lifecycle flag.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Controller owns the interrupt dispatch subsystem. Construct with New,
// register handlers, then Run. All ISRs and hooks execute on the single
// dispatch goroutine.
type Controller struct {
	cfg   *control.Config
	hooks api.Hooks
	timer TimerSource

	mu  sync.Mutex // serializes registration against Run
	reg *registry
	set Set

	pending atomic.Uint64
	wake    chan struct{}
	ready   chan error
	done    chan struct{}
	state   atomic.Int32

	timerArmed atomic.Bool
	metrics    *control.MetricsRegistry
}

var _ api.Raiser = (*Controller)(nil)

// New initializes a Controller: validates configuration and seeds the
// notification set with the reserved identifiers.
func New(cfg *control.Config, hooks api.Hooks) (*Controller, error) {
	if cfg == nil {
		cfg = control.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if hooks == nil {
		hooks = nopHooks{}
	}
	c := &Controller{
		cfg:   cfg,
		hooks: hooks,
		timer: tickerSource{},
		reg:   newRegistry(cfg.RegistryCapacity),
		wake:  make(chan struct{}, 1),
		ready: make(chan error, 1),
		done:  make(chan struct{}),
	}
	c.set.Add(api.IRQTerminate)
	c.set.Add(api.IRQTimerTick)
	c.set.Add(api.IRQSoftIRQ)
	return c, nil
}

// SetTimerSource replaces the default ticker-backed timer source.
// Must be called before Run.
func (c *Controller) SetTimerSource(ts TimerSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ts != nil {
		c.timer = ts
	}
}

// AttachMetrics wires a metrics registry for dispatch counters.
// Must be called before Run.
func (c *Controller) AttachMetrics(mr *control.MetricsRegistry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metrics = mr
}

// Register links an interrupt service routine for irq. Registration must
// complete before Run; afterwards it is rejected rather than racing the
// dispatch loop. A second entry for the same identifier requires IRQShared
// on both sides; entries under one identifier fire most-recent-first.
func (c *Controller) Register(irq api.IRQ, isr api.ISR, flags api.Flag, name string, dev any) error {
	if !irq.Valid() {
		return api.ErrIRQOutOfRange
	}
	if irq.Reserved() {
		return api.ErrIRQReserved
	}
	if isr == nil {
		return fmt.Errorf("intr: nil ISR for %s", irq)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	switch State(c.state.Load()) {
	case StateRunning:
		return api.ErrDispatcherRunning
	case StateStopped:
		return api.ErrDispatcherStopped
	}
	if err := c.reg.add(irq, isr, flags, name, dev); err != nil {
		return err
	}
	c.set.Add(irq)
	log.Printf("[intr] registered: irq=%s flags=0x%04x name=%q", irq, uint16(flags), name)
	return nil
}

// Run starts the dispatch goroutine and blocks until it has pinned its
// thread, armed the timer source, and is about to enter the loop. A nil
// return guarantees the dispatcher is listening: no raise after Run
// returns can be lost. Platform failures during startup surface here as
// *api.PlatformError.
func (c *Controller) Run() error {
	c.mu.Lock()
	if !c.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		prev := State(c.state.Load())
		c.mu.Unlock()
		if prev == StateRunning {
			return api.ErrDispatcherRunning
		}
		return api.ErrDispatcherStopped
	}
	c.mu.Unlock()

	go c.loop()

	if err := <-c.ready; err != nil {
		c.state.Store(int32(StateStopped))
		<-c.done
		return err
	}
	return nil
}

// Raise synthesizes a pending notification for irq, targeted at the
// dispatch goroutine. Callable from any goroutine, including from inside
// an ISR. Raising an in-range identifier that is neither registered nor
// reserved is accepted but never observed: the notification set controls
// observation, not delivery. Back-to-back raises of one identifier before
// it is serviced coalesce into a single delivery.
func (c *Controller) Raise(irq api.IRQ) error {
	if !irq.Valid() {
		return api.ErrIRQOutOfRange
	}
	c.pending.Or(uint64(1) << uint(irq))
	c.count("intr.raised")
	select {
	case c.wake <- struct{}{}:
	default:
	}
	return nil
}

// Shutdown stops the dispatch goroutine by raising the reserved terminate
// identifier and waits for it to exit. A no-op before Run and on repeated
// calls.
func (c *Controller) Shutdown() {
	if !c.state.CompareAndSwap(int32(StateRunning), int32(StateStopped)) {
		return
	}
	_ = c.Raise(api.IRQTerminate)
	<-c.done
}

// State returns the current lifecycle state.
func (c *Controller) State() State { return State(c.state.Load()) }

// TimerArmed reports whether the periodic timer source is live. It is the
// out-of-band health signal for the degraded-timer failure mode.
func (c *Controller) TimerArmed() bool { return c.timerArmed.Load() }

// RegisterProbes exposes dispatcher state through a debug surface.
func (c *Controller) RegisterProbes(d api.Debug) {
	d.RegisterProbe("intr.state", func() any { return c.State().String() })
	d.RegisterProbe("intr.timer_armed", func() any { return c.TimerArmed() })
	d.RegisterProbe("intr.pending", func() any { return c.pending.Load() })
	d.RegisterProbe("intr.handlers", func() any {
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.reg.size()
	})
}

// count bumps a dispatch counter when a metrics registry is attached.
func (c *Controller) count(key string) {
	if c.metrics != nil {
		c.metrics.Inc(key, 1)
	}
}

// nopHooks is installed when the consumer supplies no hooks.
type nopHooks struct{}

func (nopHooks) OnTimerTick() {}
func (nopHooks) OnSoftIRQ()   {}
