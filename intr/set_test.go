package intr

import (
	"testing"

	"github.com/momentics/hioload-irq/api"
)

func TestSetAddHas(t *testing.T) {
	var s Set
	if s.Has(api.IRQBase) {
		t.Error("empty set should not contain anything")
	}
	s.Add(api.IRQBase)
	s.Add(api.IRQMax)
	if !s.Has(api.IRQBase) || !s.Has(api.IRQMax) {
		t.Error("added identifiers missing from set")
	}
	if s.Len() != 2 {
		t.Errorf("expected len 2, got %d", s.Len())
	}
}

func TestLowestPrefersReserved(t *testing.T) {
	var s Set
	s.Add(api.IRQTerminate)
	s.Add(api.IRQBase + 5)
	if got := lowest(s.Mask()); got != api.IRQTerminate {
		t.Errorf("expected terminate first, got %s", got)
	}

	var s2 Set
	s2.Add(api.IRQTimerTick)
	s2.Add(api.IRQSoftIRQ)
	if got := lowest(s2.Mask()); got != api.IRQTimerTick {
		t.Errorf("expected timer-tick before soft-irq, got %s", got)
	}
}
