// File: adapters/shutdown_adapter.go
// Package adapters
// Author: momentics <momentics@gmail.com>
//
// GracefulShutdown glue for lifecycle owners with void Shutdown.

package adapters

import "github.com/momentics/hioload-irq/api"

// stopper is any component with a void, idempotent Shutdown.
type stopper interface {
	Shutdown()
}

// shutdownAdapter turns a stopper into an api.GracefulShutdown.
type shutdownAdapter struct {
	s stopper
}

// NewShutdownAdapter wraps a dispatcher-style component for teardown
// orchestration alongside other api.GracefulShutdown services.
func NewShutdownAdapter(s stopper) api.GracefulShutdown {
	return &shutdownAdapter{s: s}
}

func (a *shutdownAdapter) Shutdown() error {
	a.s.Shutdown()
	return nil
}
