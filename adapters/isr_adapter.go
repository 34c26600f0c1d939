// File: adapters/isr_adapter.go
// Package adapters
// Author: momentics <momentics@gmail.com>
//
// ISRFunc glue and extensible middleware over interrupt service routines.

package adapters

import (
	"log"

	"github.com/momentics/hioload-irq/api"
	"github.com/momentics/hioload-irq/control"
)

// ISRFunc converts a function into an api.ISR.
type ISRFunc func(irq api.IRQ, dev any) error

// HandleIRQ calls the underlying function.
func (f ISRFunc) HandleIRQ(irq api.IRQ, dev any) error {
	return f(irq, dev)
}

// MiddlewareISR wraps a base ISR and applies middleware in chain.
type MiddlewareISR struct {
	isr        api.ISR
	middleware []func(api.ISR) api.ISR
}

// NewMiddlewareISR creates a new MiddlewareISR for the given base routine.
func NewMiddlewareISR(isr api.ISR) *MiddlewareISR {
	return &MiddlewareISR{
		isr:        isr,
		middleware: make([]func(api.ISR) api.ISR, 0),
	}
}

// Use appends a middleware to the chain.
func (m *MiddlewareISR) Use(mw func(api.ISR) api.ISR) *MiddlewareISR {
	m.middleware = append(m.middleware, mw)
	return m
}

// HandleIRQ applies all middleware then calls the base routine.
func (m *MiddlewareISR) HandleIRQ(irq api.IRQ, dev any) error {
	isr := m.isr
	for i := len(m.middleware) - 1; i >= 0; i-- {
		isr = m.middleware[i](isr)
	}
	return isr.HandleIRQ(irq, dev)
}

// LoggingMiddleware logs entry and errors of ISR invocation.
func LoggingMiddleware(next api.ISR) api.ISR {
	return ISRFunc(func(irq api.IRQ, dev any) error {
		log.Printf("[isr] servicing %s", irq)
		err := next.HandleIRQ(irq, dev)
		if err != nil {
			log.Printf("[isr] %s error: %v", irq, err)
		}
		return err
	})
}

// RecoveryMiddleware recovers from panics in an ISR so a faulty driver
// cannot take down the dispatch loop.
func RecoveryMiddleware(next api.ISR) api.ISR {
	return ISRFunc(func(irq api.IRQ, dev any) error {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[isr] panic recovered on %s: %v", irq, r)
			}
		}()
		return next.HandleIRQ(irq, dev)
	})
}

// MetricsMiddleware counts ISR invocations per identifier.
func MetricsMiddleware(mr *control.MetricsRegistry) func(api.ISR) api.ISR {
	return func(next api.ISR) api.ISR {
		return ISRFunc(func(irq api.IRQ, dev any) error {
			mr.Inc("isr."+irq.String(), 1)
			return next.HandleIRQ(irq, dev)
		})
	}
}
