// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts of the hioload-irq library: interrupt identifiers,
// handler and hook interfaces, error taxonomy, and control/debug surfaces.
// Implementation lives in the intr package; this package has no
// dependencies and can be imported by drivers and consumers alike.
package api
