// File: intr/loop.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The dispatch loop: single consumer demultiplexing pending notifications
// into synchronous handler invocations, one per iteration.

package intr

import (
	"errors"
	"log"
	"runtime"
	"time"

	"github.com/momentics/hioload-irq/affinity"
	"github.com/momentics/hioload-irq/api"
)

// loop is the dispatch goroutine body. Startup order matters: pin the
// thread, arm the timer, then signal the rendezvous — so every startup
// failure is observed by Run, and no tick or raise can be lost once Run
// has returned.
func (c *Controller) loop() {
	defer close(c.done)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if c.cfg.PinCPU >= 0 {
		if err := affinity.SetAffinity(c.cfg.PinCPU); err != nil {
			c.ready <- &api.PlatformError{Op: api.OpAffinityPin, Err: err}
			return
		}
	}

	ticks, stopTimer, err := c.timer.Arm(c.cfg.TickInterval)
	if err != nil {
		var perr *api.PlatformError
		if !errors.As(err, &perr) {
			err = &api.PlatformError{Op: api.OpTimerArm, Err: err}
		}
		log.Printf("[intr] timer arm failed: %v", err)
		c.ready <- err
		return
	}
	c.timerArmed.Store(true)

	timerDone := make(chan struct{})
	go c.forwardTicks(ticks, timerDone)
	defer func() {
		close(timerDone)
		stopTimer()
		c.timerArmed.Store(false)
	}()

	log.Printf("[intr] dispatch loop start")
	c.ready <- nil

	for {
		irq, ok := c.nextPending()
		if !ok {
			// The only suspension point of the subsystem.
			<-c.wake
			continue
		}
		if irq == api.IRQTerminate {
			log.Printf("[intr] dispatch loop terminated")
			return
		}
		c.dispatch(irq)
	}
}

// nextPending consumes the lowest pending identifier admitted by the
// notification set. Pending bits outside the set stay raised but are
// never observed.
func (c *Controller) nextPending() (api.IRQ, bool) {
	masked := c.pending.Load() & c.set.Mask()
	if masked == 0 {
		return 0, false
	}
	irq := lowest(masked)
	c.pending.And(^(uint64(1) << uint(irq)))
	return irq, true
}

// dispatch classifies one notification and invokes the matching handlers
// synchronously.
func (c *Controller) dispatch(irq api.IRQ) {
	switch irq {
	case api.IRQTimerTick:
		c.count("intr.ticks")
		c.hooks.OnTimerTick()
	case api.IRQSoftIRQ:
		c.count("intr.softirqs")
		c.hooks.OnSoftIRQ()
	default:
		c.count("intr.dispatched")
		c.reg.forEach(irq, func(e *entry) {
			if err := e.isr.HandleIRQ(irq, e.dev); err != nil {
				c.count("intr.isr_errors")
				if c.cfg.LogISRErrors {
					log.Printf("[intr] isr error: irq=%s name=%q: %v", irq, e.name, err)
				}
			}
		})
	}
}

// forwardTicks turns timer expirations into timer-tick raises until the
// loop exits. Ticks landing while one is still pending coalesce.
func (c *Controller) forwardTicks(ticks <-chan time.Time, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-ticks:
			_ = c.Raise(api.IRQTimerTick)
		}
	}
}
