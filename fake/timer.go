// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"sync/atomic"
	"time"
)

// ManualTimer is a TimerSource driven by the test instead of the clock.
// Send on C to emulate a timer expiration. ArmErr, when non-nil, makes
// Arm fail, exercising the degraded-timer startup path.
type ManualTimer struct {
	C      chan time.Time
	ArmErr error

	armedWith atomic.Int64
	stopped   atomic.Bool
}

// NewManualTimer builds a manual timer source.
func NewManualTimer() *ManualTimer {
	return &ManualTimer{C: make(chan time.Time, 1)}
}

func (m *ManualTimer) Arm(interval time.Duration) (<-chan time.Time, func(), error) {
	if m.ArmErr != nil {
		return nil, nil, m.ArmErr
	}
	m.armedWith.Store(int64(interval))
	return m.C, func() { m.stopped.Store(true) }, nil
}

// ArmedWith returns the interval the source was armed with.
func (m *ManualTimer) ArmedWith() time.Duration {
	return time.Duration(m.armedWith.Load())
}

// Stopped reports whether the loop released the timer.
func (m *ManualTimer) Stopped() bool { return m.stopped.Load() }

// Tick emulates one timer expiration.
func (m *ManualTimer) Tick() {
	select {
	case m.C <- time.Now():
	default:
	}
}
