package adapters_test

import (
	"errors"
	"io"
	"log"
	"os"
	"testing"

	"github.com/momentics/hioload-irq/adapters"
	"github.com/momentics/hioload-irq/api"
	"github.com/momentics/hioload-irq/control"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestISRFunc(t *testing.T) {
	var seen api.IRQ
	isr := adapters.ISRFunc(func(irq api.IRQ, dev any) error {
		seen = irq
		return nil
	})
	if err := isr.HandleIRQ(api.IRQBase, nil); err != nil {
		t.Fatal(err)
	}
	if seen != api.IRQBase {
		t.Errorf("seen = %s, want %s", seen, api.IRQBase)
	}
}

func TestMiddlewareChainOrder(t *testing.T) {
	var order []string
	base := adapters.ISRFunc(func(api.IRQ, any) error {
		order = append(order, "base")
		return nil
	})
	mw := func(tag string) func(api.ISR) api.ISR {
		return func(next api.ISR) api.ISR {
			return adapters.ISRFunc(func(irq api.IRQ, dev any) error {
				order = append(order, tag)
				return next.HandleIRQ(irq, dev)
			})
		}
	}
	m := adapters.NewMiddlewareISR(base).Use(mw("outer")).Use(mw("inner"))
	if err := m.HandleIRQ(api.IRQBase, nil); err != nil {
		t.Fatal(err)
	}
	want := []string{"outer", "inner", "base"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order %v, want %v", order, want)
		}
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	panicky := adapters.ISRFunc(func(api.IRQ, any) error {
		panic("driver bug")
	})
	isr := adapters.RecoveryMiddleware(panicky)
	if err := isr.HandleIRQ(api.IRQBase, nil); err != nil {
		t.Errorf("recovered invocation returned %v", err)
	}
}

func TestMetricsMiddleware(t *testing.T) {
	mr := control.NewMetricsRegistry()
	base := adapters.ISRFunc(func(api.IRQ, any) error { return nil })
	isr := adapters.MetricsMiddleware(mr)(base)
	_ = isr.HandleIRQ(api.IRQBase, nil)
	_ = isr.HandleIRQ(api.IRQBase, nil)
	key := "isr." + api.IRQBase.String()
	if v, _ := mr.GetSnapshot()[key].(int64); v != 2 {
		t.Errorf("%s = %v, want 2", key, v)
	}
}

func TestLoggingMiddlewarePassesError(t *testing.T) {
	want := errors.New("nak")
	base := adapters.ISRFunc(func(api.IRQ, any) error { return want })
	if err := adapters.LoggingMiddleware(base).HandleIRQ(api.IRQBase, nil); !errors.Is(err, want) {
		t.Errorf("error = %v, want %v", err, want)
	}
}

func TestHookFuncsNilSafe(t *testing.T) {
	var h adapters.HookFuncs
	h.OnTimerTick() // must not panic
	h.OnSoftIRQ()

	ticks := 0
	h = adapters.HookFuncs{Tick: func() { ticks++ }}
	h.OnTimerTick()
	if ticks != 1 {
		t.Errorf("ticks = %d, want 1", ticks)
	}
}

func TestControlAdapter(t *testing.T) {
	ctrl := adapters.NewControlAdapter(control.DefaultConfig())
	cfg := ctrl.GetConfig()
	if cfg["registry_capacity"] != 64 {
		t.Errorf("seeded config missing, got %v", cfg["registry_capacity"])
	}
	if err := ctrl.SetConfig(map[string]any{"k": 1}); err != nil {
		t.Fatal(err)
	}
	if ctrl.GetConfig()["k"] != 1 {
		t.Error("SetConfig did not apply")
	}

	ctrl.Metrics().Inc("n", 1)
	ctrl.RegisterDebugProbe("p", func() any { return "ok" })
	stats := ctrl.Stats()
	if v, _ := stats["n"].(int64); v != 1 {
		t.Errorf("stats[n] = %v, want 1", stats["n"])
	}
	if stats["debug.p"] != "ok" {
		t.Errorf("stats[debug.p] = %v, want ok", stats["debug.p"])
	}
}

type stopRecorder struct{ stopped bool }

func (s *stopRecorder) Shutdown() { s.stopped = true }

func TestShutdownAdapter(t *testing.T) {
	rec := &stopRecorder{}
	gs := adapters.NewShutdownAdapter(rec)
	if err := gs.Shutdown(); err != nil {
		t.Fatal(err)
	}
	if !rec.stopped {
		t.Error("Shutdown not delegated")
	}
}
