package intr

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-irq/api"
)

type nopISR struct{}

func (nopISR) HandleIRQ(api.IRQ, any) error { return nil }

func TestRegistryConflict(t *testing.T) {
	r := newRegistry(8)
	if err := r.add(api.IRQBase, nopISR{}, api.IRQExclusive, "a", nil); err != nil {
		t.Fatalf("first add: %v", err)
	}
	// Exclusive entry blocks any second registration.
	if err := r.add(api.IRQBase, nopISR{}, api.IRQShared, "b", nil); !errors.Is(err, api.ErrIRQConflict) {
		t.Errorf("expected conflict, got %v", err)
	}

	r2 := newRegistry(8)
	if err := r2.add(api.IRQBase, nopISR{}, api.IRQShared, "a", nil); err != nil {
		t.Fatalf("shared add: %v", err)
	}
	// A non-shared newcomer conflicts even with shared entries present.
	if err := r2.add(api.IRQBase, nopISR{}, api.IRQExclusive, "b", nil); !errors.Is(err, api.ErrIRQConflict) {
		t.Errorf("expected conflict, got %v", err)
	}
	if err := r2.add(api.IRQBase, nopISR{}, api.IRQShared, "c", nil); err != nil {
		t.Errorf("shared+shared should coexist: %v", err)
	}
}

func TestRegistryMRUOrder(t *testing.T) {
	r := newRegistry(8)
	for _, name := range []string{"first", "second", "third"} {
		if err := r.add(api.IRQBase, nopISR{}, api.IRQShared, name, nil); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}
	var got []string
	r.forEach(api.IRQBase, func(e *entry) { got = append(got, e.name) })
	want := []string{"third", "second", "first"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order %v, want %v", got, want)
		}
	}
}

func TestRegistryCapacity(t *testing.T) {
	r := newRegistry(2)
	_ = r.add(api.IRQBase, nopISR{}, api.IRQExclusive, "a", nil)
	_ = r.add(api.IRQBase+1, nopISR{}, api.IRQExclusive, "b", nil)
	if err := r.add(api.IRQBase+2, nopISR{}, api.IRQExclusive, "c", nil); !errors.Is(err, api.ErrRegistryFull) {
		t.Errorf("expected registry full, got %v", err)
	}
	if r.size() != 2 {
		t.Errorf("size = %d, want 2", r.size())
	}
}

func TestRegistryNameTruncation(t *testing.T) {
	r := newRegistry(2)
	long := "a-very-long-device-name-indeed"
	if err := r.add(api.IRQBase, nopISR{}, api.IRQExclusive, long, nil); err != nil {
		t.Fatalf("add: %v", err)
	}
	r.forEach(api.IRQBase, func(e *entry) {
		if len(e.name) != api.MaxNameLen {
			t.Errorf("name %q not truncated to %d", e.name, api.MaxNameLen)
		}
		if e.name != long[:api.MaxNameLen] {
			t.Errorf("unexpected truncation %q", e.name)
		}
	})
}
