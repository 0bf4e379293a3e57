package server

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aibabysense/landing/pkg/ui"
)

// gatherValue returns the value of the unlabeled counter or gauge name.
func gatherValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		var total float64
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				total += m.GetGauge().GetValue()
			}
		}
		return total
	}
	return 0
}

func TestManagerSessionLimit(t *testing.T) {
	reg := prometheus.NewRegistry()
	sm := NewSessionManager(nil, ui.NewManualClock(), 1, NewMetrics(reg), discardLogger())

	first, err := sm.Create(nil, "192.0.2.1")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if first.IP != "192.0.2.1" {
		t.Errorf("IP = %q", first.IP)
	}
	if sm.Get(first.ID) != first {
		t.Error("Get() did not return the created session")
	}

	if _, err := sm.Create(nil, "192.0.2.2"); !errors.Is(err, ErrMaxSessionsReached) {
		t.Fatalf("second Create() error = %v, want ErrMaxSessionsReached", err)
	}
	if err := sm.Reserve(); !errors.Is(err, ErrMaxSessionsReached) {
		t.Errorf("Reserve() = %v, want ErrMaxSessionsReached", err)
	}

	sm.Close(first.ID)
	if sm.Count() != 0 || sm.Get(first.ID) != nil {
		t.Fatalf("closed session still registered")
	}
	if err := sm.Reserve(); err != nil {
		t.Errorf("Reserve() after close = %v", err)
	}

	stats := sm.Stats()
	if stats.TotalCreated != 1 || stats.TotalClosed != 1 || stats.Peak != 1 || stats.Active != 0 {
		t.Errorf("Stats() = %+v", stats)
	}
	if got := gatherValue(t, reg, "landing_sessions_rejected_total"); got != 1 {
		t.Errorf("rejected = %v, want 1", got)
	}
	if got := gatherValue(t, reg, "landing_active_sessions"); got != 0 {
		t.Errorf("active gauge = %v, want 0", got)
	}
	if got := gatherValue(t, reg, "landing_sessions_total"); got != 1 {
		t.Errorf("sessions_total = %v, want 1", got)
	}
}

func TestManagerSessionClosesItself(t *testing.T) {
	sm := NewSessionManager(nil, nil, 0, nil, discardLogger())

	s, err := sm.Create(nil, "")
	if err != nil {
		t.Fatal(err)
	}
	s.Close()
	s.Close()

	if sm.Count() != 0 || sm.Get(s.ID) != nil {
		t.Errorf("Count() = %d, want 0", sm.Count())
	}
	if stats := sm.Stats(); stats.TotalCreated != 1 || stats.TotalClosed != 1 {
		t.Errorf("Stats() = %+v, want one created and one closed", stats)
	}
}

func TestManagerShutdown(t *testing.T) {
	clock := ui.NewManualClock()
	sm := NewSessionManager(nil, clock, 0, nil, discardLogger())

	var sessions []*Session
	for i := 0; i < 3; i++ {
		s, err := sm.Create(nil, "")
		if err != nil {
			t.Fatal(err)
		}
		s.Start()
		sessions = append(sessions, s)
	}

	if err := sm.Shutdown(context.Background(), "bye"); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if sm.Count() != 0 {
		t.Errorf("Count() after shutdown = %d", sm.Count())
	}
	for _, s := range sessions {
		if !s.IsClosed() || !s.Owner().IsDisposed() {
			t.Errorf("session %s not closed", s.ID)
		}
	}
	if _, err := sm.Create(nil, ""); !errors.Is(err, ErrServerClosed) {
		t.Errorf("Create() after shutdown = %v, want ErrServerClosed", err)
	}
}
