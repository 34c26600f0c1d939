// File: intr/set.go
// Author: momentics <momentics@gmail.com>
//
// Notification set: the mask of interrupt identifiers the dispatch thread
// is permitted to observe.

package intr

import (
	"math/bits"

	"github.com/momentics/hioload-irq/api"
)

// Set is a 64-bit mask over IRQ identifiers 0..63. It is built during
// registration, fixed once Run begins, and filters which pending bits the
// dispatch loop may observe.
type Set uint64

// Add inserts an identifier into the set.
func (s *Set) Add(irq api.IRQ) { *s |= 1 << uint(irq) }

// Has reports whether the identifier is in the set.
func (s Set) Has(irq api.IRQ) bool { return s&(1<<uint(irq)) != 0 }

// Mask returns the raw bit mask.
func (s Set) Mask() uint64 { return uint64(s) }

// Len returns the number of identifiers in the set.
func (s Set) Len() int { return bits.OnesCount64(uint64(s)) }

// lowest returns the smallest identifier present in a non-zero mask.
// Reserved identifiers occupy the low bits, so they outrank driver IRQs.
func lowest(mask uint64) api.IRQ {
	return api.IRQ(bits.TrailingZeros64(mask))
}
