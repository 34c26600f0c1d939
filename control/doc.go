// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics, dispatcher configuration, and debug introspection layer.
// Part of the hioload-irq interrupt emulation core.
//
// Provides concurrent-safe state handling primitives including:
//   - Typed dispatcher configuration with YAML loading and validation
//   - Metrics telemetry counters
//   - Debug hooks and probe registration, including the dispatcher
//     health probes (state, timer status, pending set)
package control
