// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-irq.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrIRQConflict       = fmt.Errorf("irq conflicts with an already registered entry")
	ErrIRQReserved       = fmt.Errorf("irq is reserved for the dispatcher")
	ErrIRQOutOfRange     = fmt.Errorf("irq is outside the notification set range")
	ErrRegistryFull      = fmt.Errorf("handler registry is full")
	ErrDispatcherRunning = fmt.Errorf("dispatcher is already running")
	ErrDispatcherStopped = fmt.Errorf("dispatcher has been shut down")
	ErrQueueSaturated    = fmt.Errorf("deferred-work queue is full")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeConflict
	ErrCodeReserved
	ErrCodeOutOfRange
	ErrCodeExhausted
	ErrCodeLifecycle
	ErrCodePlatform
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// Platform operation names used in PlatformError.Op.
const (
	OpTimerArm    = "timer-arm"
	OpAffinityPin = "affinity-pin"
)

// PlatformError reports a failed underlying platform operation, keeping
// the failing operation distinguishable for callers.
type PlatformError struct {
	Op  string
	Err error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("platform: %s: %v", e.Op, e.Err)
}

func (e *PlatformError) Unwrap() error { return e.Err }
