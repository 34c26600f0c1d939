// File: adapters/hooks_adapter.go
// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Function-to-Hooks glue for the two fixed dispatch loop callbacks.

package adapters

// HookFuncs adapts plain functions to api.Hooks. Nil fields are no-ops.
type HookFuncs struct {
	Tick func()
	Soft func()
}

func (h HookFuncs) OnTimerTick() {
	if h.Tick != nil {
		h.Tick()
	}
}

func (h HookFuncs) OnSoftIRQ() {
	if h.Soft != nil {
		h.Soft()
	}
}
