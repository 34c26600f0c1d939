// Package intr
// Author: momentics <momentics@gmail.com>
//
// Core interrupt dispatch subsystem: emulates hardware interrupts in a
// user-space process. A small set of interrupt identifiers is mapped onto
// in-process notifications, all of which funnel through one dedicated
// dispatch goroutine (locked to its OS thread) that invokes registered
// service routines synchronously, one notification per iteration.
//
// The model mirrors a kernel interrupt controller deliberately stripped of
// priorities and nesting: handlers never run concurrently with each other
// or with the timer-tick and soft-irq hooks, and a stalled handler stalls
// the whole loop. Registration happens before Run; the notification set is
// fixed once the dispatcher starts.
package intr
