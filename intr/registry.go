// File: intr/registry.go
// Author: momentics <momentics@gmail.com>
//
// Append-only handler registry: a fixed-capacity arena of entries plus a
// per-IRQ index in most-recently-registered-first order.

package intr

import (
	"github.com/momentics/hioload-irq/api"
)

// entry is one registered interrupt service routine. Entries live for the
// process lifetime; there is no removal.
type entry struct {
	irq   api.IRQ
	isr   api.ISR
	flags api.Flag
	name  string
	dev   any // opaque device context, not owned
}

// registry holds entries in an arena indexed by IRQ. It carries no locking
// of its own: the Controller serializes mutation and rejects it entirely
// while the dispatch loop runs, after which the registry is read-only.
type registry struct {
	entries  []entry
	index    map[api.IRQ][]int // MRU-first arena indices
	capacity int
}

func newRegistry(capacity int) *registry {
	return &registry{
		entries:  make([]entry, 0, capacity),
		index:    make(map[api.IRQ][]int),
		capacity: capacity,
	}
}

// add links a new entry for irq. A second entry under the same identifier
// requires IRQShared on both the existing entries and the new one.
func (r *registry) add(irq api.IRQ, isr api.ISR, flags api.Flag, name string, dev any) error {
	for _, i := range r.index[irq] {
		if r.entries[i].flags&api.IRQShared == 0 || flags&api.IRQShared == 0 {
			return api.ErrIRQConflict
		}
	}
	if len(r.entries) >= r.capacity {
		return api.ErrRegistryFull
	}
	if len(name) > api.MaxNameLen {
		name = name[:api.MaxNameLen]
	}
	r.entries = append(r.entries, entry{
		irq:   irq,
		isr:   isr,
		flags: flags,
		name:  name,
		dev:   dev,
	})
	r.index[irq] = append([]int{len(r.entries) - 1}, r.index[irq]...)
	return nil
}

// forEach visits every entry registered under irq, most recent first.
func (r *registry) forEach(irq api.IRQ, fn func(e *entry)) {
	for _, i := range r.index[irq] {
		fn(&r.entries[i])
	}
}

func (r *registry) size() int { return len(r.entries) }
