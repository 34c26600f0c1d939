// File: api/irq.go
// Package api defines interrupt identifiers and handler contracts.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "fmt"

// IRQ identifies one class of asynchronous event. Identifiers map onto a
// 64-entry notification set; values below IRQBase are owned by the
// dispatcher and never available for driver registration.
type IRQ uint

const (
	// IRQTerminate stops the dispatch loop. Raised internally by Shutdown.
	IRQTerminate IRQ = 0

	// IRQTimerTick drives the periodic time-tick hook.
	IRQTimerTick IRQ = 1

	// IRQSoftIRQ drives the deferred-work hook.
	IRQSoftIRQ IRQ = 2

	// IRQBase is the first identifier assignable to drivers.
	IRQBase IRQ = 16

	// IRQMax is the highest representable identifier.
	IRQMax IRQ = 63
)

// Reserved reports whether the identifier belongs to the dispatcher itself.
func (i IRQ) Reserved() bool { return i < IRQBase }

// Valid reports whether the identifier fits the notification set.
func (i IRQ) Valid() bool { return i <= IRQMax }

func (i IRQ) String() string {
	switch i {
	case IRQTerminate:
		return "terminate"
	case IRQTimerTick:
		return "timer-tick"
	case IRQSoftIRQ:
		return "soft-irq"
	default:
		return fmt.Sprintf("irq(%d)", uint(i))
	}
}

// Flag controls how an IRQ may be shared between handler entries.
type Flag uint16

const (
	// IRQExclusive entries own their identifier outright.
	IRQExclusive Flag = 0

	// IRQShared allows multiple entries under one identifier, provided
	// every entry for that identifier was registered shared.
	IRQShared Flag = 1 << 0
)

// MaxNameLen bounds handler entry names; longer names are truncated.
const MaxNameLen = 15

// ISR is an interrupt service routine. It runs synchronously on the
// dispatch thread; a non-nil error is logged, never propagated.
type ISR interface {
	HandleIRQ(irq IRQ, dev any) error
}

// Hooks are the two fixed callback entry points of the external consumer,
// both invoked synchronously from the dispatch thread.
type Hooks interface {
	// OnTimerTick runs once per observed periodic tick.
	OnTimerTick()

	// OnSoftIRQ runs once per observed soft interrupt.
	OnSoftIRQ()
}

// Raiser synthesizes a pending notification for the dispatch thread.
type Raiser interface {
	Raise(irq IRQ) error
}
