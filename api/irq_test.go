package api_test

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-irq/api"
)

func TestIRQClassification(t *testing.T) {
	for _, irq := range []api.IRQ{api.IRQTerminate, api.IRQTimerTick, api.IRQSoftIRQ} {
		if !irq.Reserved() {
			t.Errorf("%s should be reserved", irq)
		}
		if !irq.Valid() {
			t.Errorf("%s should be valid", irq)
		}
	}
	if api.IRQBase.Reserved() {
		t.Error("IRQBase must be driver-assignable")
	}
	if !api.IRQMax.Valid() {
		t.Error("IRQMax must be valid")
	}
	if (api.IRQMax + 1).Valid() {
		t.Error("IRQMax+1 must be invalid")
	}
}

func TestIRQString(t *testing.T) {
	cases := map[api.IRQ]string{
		api.IRQTerminate: "terminate",
		api.IRQTimerTick: "timer-tick",
		api.IRQSoftIRQ:   "soft-irq",
		api.IRQBase:      "irq(16)",
	}
	for irq, want := range cases {
		if got := irq.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", uint(irq), got, want)
		}
	}
}

func TestPlatformError(t *testing.T) {
	inner := errors.New("EAGAIN")
	err := &api.PlatformError{Op: api.OpTimerArm, Err: inner}
	if !errors.Is(err, inner) {
		t.Error("Unwrap lost the inner error")
	}
	if err.Error() != "platform: timer-arm: EAGAIN" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestStructuredError(t *testing.T) {
	err := api.NewError(api.ErrCodeConflict, "irq busy").WithContext("irq", 17)
	if err.Code != api.ErrCodeConflict {
		t.Errorf("code = %v", err.Code)
	}
	if err.Error() == "irq busy" {
		t.Error("context missing from message")
	}
}
