package registry

import (
	"context"
	"testing"
	"time"
)

func TestMonitor_DemotesStaleRecords(t *testing.T) {
	pub := &capturePublisher{}
	s := New(pub)
	rec, _ := s.Register(testRegistration("svc", "9001"))

	s.mu.Lock()
	s.records[rec.ID].LastHeartbeat = time.Now().Add(-time.Second)
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewMonitor(s, 20*time.Millisecond, 500*time.Millisecond, nil)
	go m.Run(ctx)

	deadline := time.After(2 * time.Second)
	for {
		got, err := s.Get(rec.ID)
		if err != nil {
			t.Fatalf("Get returned error: %v", err)
		}
		if got.Status == StatusOffline {
			break
		}
		select {
		case <-deadline:
			t.Fatal("record was not demoted to offline in time")
		case <-time.After(10 * time.Millisecond):
		}
	}

	if events := pub.byType(EventStatusChange); len(events) != 1 {
		t.Errorf("got %d status_change events, want 1", len(events))
	}
}

func TestMonitor_StopsOnCancel(t *testing.T) {
	s := New(nil)
	m := NewMonitor(s, 10*time.Millisecond, time.Minute, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop after context cancellation")
	}
}
