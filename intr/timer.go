// File: intr/timer.go
// Author: momentics <momentics@gmail.com>
//
// Periodic timer source driving the reserved timer-tick notification.

package intr

import (
	"fmt"
	"time"

	"github.com/momentics/hioload-irq/api"
)

// TimerSource arms the periodic notification behind IRQTimerTick. The
// dispatch goroutine arms it before signalling the startup rendezvous, so
// an arming failure is observed by Run as a PlatformError.
type TimerSource interface {
	// Arm starts a periodic tick channel at the given interval and
	// returns a stop function releasing the underlying timer.
	Arm(interval time.Duration) (ticks <-chan time.Time, stop func(), err error)
}

// tickerSource is the default TimerSource backed by time.Ticker.
type tickerSource struct{}

func (tickerSource) Arm(interval time.Duration) (<-chan time.Time, func(), error) {
	if interval <= 0 {
		return nil, nil, &api.PlatformError{
			Op:  api.OpTimerArm,
			Err: fmt.Errorf("non-positive interval %v", interval),
		}
	}
	t := time.NewTicker(interval)
	return t.C, t.Stop, nil
}
