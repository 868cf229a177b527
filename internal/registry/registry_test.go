package registry

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// capturePublisher records published events for assertions.
type capturePublisher struct {
	mu     sync.Mutex
	events []capturedEvent
}

type capturedEvent struct {
	eventType   string
	serviceName string
	data        any
}

func (p *capturePublisher) Publish(eventType, serviceName string, data any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, capturedEvent{eventType, serviceName, data})
}

func (p *capturePublisher) byType(eventType string) []capturedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []capturedEvent
	for _, e := range p.events {
		if e.eventType == eventType {
			out = append(out, e)
		}
	}
	return out
}

func testRegistration(name, port string) Registration {
	return Registration{
		Name:     name,
		Version:  "1.0.0",
		Address:  "127.0.0.1",
		Port:     port,
		Methods:  []string{"GetDividendHistory(GetDividendHistoryRequest)"},
		Metadata: map[string]string{"env": "prod"},
	}
}

func TestStore_RegisterAndList(t *testing.T) {
	s := New(nil)

	rec, err := s.Register(testRegistration("dividend-service", "9001"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("expected a non-empty service id")
	}
	if rec.Status != StatusOnline {
		t.Errorf("Status = %q, want %q", rec.Status, StatusOnline)
	}
	if rec.FQName != "dividend-service" {
		t.Errorf("FQName = %q, want fallback to service name", rec.FQName)
	}

	list := s.List(Filter{})
	if len(list) != 1 {
		t.Fatalf("List returned %d records, want 1", len(list))
	}
	if list[0].ID != rec.ID {
		t.Errorf("listed id = %q, want %q", list[0].ID, rec.ID)
	}
	if list[0].LastHeartbeat.Before(list[0].RegisteredAt) {
		t.Error("LastHeartbeat should not precede RegisteredAt")
	}
}

func TestStore_Register_Validation(t *testing.T) {
	s := New(nil)

	if _, err := s.Register(testRegistration("", "9001")); err == nil {
		t.Error("expected error for empty service name")
	}
	if _, err := s.Register(testRegistration("svc", "not-a-port")); err == nil {
		t.Error("expected error for non-numeric port")
	}
	if _, err := s.Register(testRegistration("svc", "70000")); err == nil {
		t.Error("expected error for out-of-range port")
	}
}

func TestStore_Register_ReplacesSameTriple(t *testing.T) {
	s := New(nil)

	first, _ := s.Register(testRegistration("dividend-service", "9001"))

	reg := testRegistration("dividend-service", "9001")
	reg.Version = "1.0.1"
	second, err := s.Register(reg)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if second.ID == first.ID {
		t.Error("replacement should receive a fresh service id")
	}

	list := s.List(Filter{})
	if len(list) != 1 {
		t.Fatalf("List returned %d records, want 1 after replacement", len(list))
	}
	if list[0].Version != "1.0.1" {
		t.Errorf("Version = %q, want %q", list[0].Version, "1.0.1")
	}

	if _, err := s.Get(first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(old id) error = %v, want ErrNotFound", err)
	}
}

func TestStore_Unregister(t *testing.T) {
	pub := &capturePublisher{}
	s := New(pub)
	rec, _ := s.Register(testRegistration("svc", "9001"))

	if err := s.Unregister(rec.ID); err != nil {
		t.Fatalf("Unregister returned error: %v", err)
	}
	if len(s.List(Filter{})) != 0 {
		t.Error("List should be empty after Unregister")
	}
	if err := s.Unregister(rec.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Unregister error = %v, want ErrNotFound", err)
	}

	events := pub.byType(EventServiceUnregistered)
	if len(events) != 1 {
		t.Fatalf("got %d service_unregistered events, want 1", len(events))
	}
	payload, ok := events[0].data.(*Unregistered)
	if !ok {
		t.Fatalf("event data has type %T, want *Unregistered", events[0].data)
	}
	if payload.ServiceID != rec.ID {
		t.Errorf("event service_id = %q, want %q", payload.ServiceID, rec.ID)
	}
}

func TestStore_List_Filters(t *testing.T) {
	s := New(nil)
	_, _ = s.Register(testRegistration("alpha", "9001"))

	reg := testRegistration("beta", "9002")
	reg.Version = "2.0.0"
	_, _ = s.Register(reg)

	if got := s.List(Filter{Name: "alpha"}); len(got) != 1 || got[0].Name != "alpha" {
		t.Errorf("List(name=alpha) = %v records", len(got))
	}
	if got := s.List(Filter{Version: "2.0.0"}); len(got) != 1 || got[0].Name != "beta" {
		t.Errorf("List(version=2.0.0) = %v records", len(got))
	}
	// Exact match only, no substring matching.
	if got := s.List(Filter{Name: "alph"}); len(got) != 0 {
		t.Errorf("List(name=alph) = %d records, want 0", len(got))
	}
}

func TestStore_LookupForDispatch_RoundRobin(t *testing.T) {
	s := New(nil)
	_, _ = s.Register(testRegistration("x", "9001"))
	_, _ = s.Register(testRegistration("x", "9002"))

	var ports []string
	for i := 0; i < 4; i++ {
		rec, err := s.LookupForDispatch("x")
		if err != nil {
			t.Fatalf("LookupForDispatch returned error: %v", err)
		}
		ports = append(ports, rec.Port)
	}

	if ports[0] == ports[1] {
		t.Fatalf("expected alternation, got %v", ports)
	}
	if ports[0] != ports[2] || ports[1] != ports[3] {
		t.Errorf("expected strict alternation, got %v", ports)
	}
}

func TestStore_LookupForDispatch_SkipsOffline(t *testing.T) {
	s := New(nil)
	a, _ := s.Register(testRegistration("x", "9001"))
	_, _ = s.Register(testRegistration("x", "9002"))

	// Age out the first instance.
	s.mu.Lock()
	s.records[a.ID].LastHeartbeat = time.Now().Add(-time.Minute)
	s.mu.Unlock()
	s.MarkStale(30 * time.Second)

	for i := 0; i < 3; i++ {
		rec, err := s.LookupForDispatch("x")
		if err != nil {
			t.Fatalf("LookupForDispatch returned error: %v", err)
		}
		if rec.Port != "9002" {
			t.Errorf("got port %q, want only the online instance", rec.Port)
		}
	}
}

func TestStore_LookupForDispatch_NoneEligible(t *testing.T) {
	s := New(nil)
	rec, _ := s.Register(testRegistration("x", "9001"))

	s.mu.Lock()
	s.records[rec.ID].LastHeartbeat = time.Now().Add(-time.Minute)
	s.mu.Unlock()
	s.MarkStale(30 * time.Second)

	if _, err := s.LookupForDispatch("x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound when all instances offline", err)
	}
	if _, err := s.LookupForDispatch("unknown"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound for unknown name", err)
	}
}

func TestStore_Heartbeat(t *testing.T) {
	pub := &capturePublisher{}
	s := New(pub)
	rec, _ := s.Register(testRegistration("svc", "9001"))

	time.Sleep(10 * time.Millisecond)
	if err := s.Heartbeat(rec.ID, ""); err != nil {
		t.Fatalf("Heartbeat returned error: %v", err)
	}

	got, _ := s.Get(rec.ID)
	if !got.LastHeartbeat.After(rec.LastHeartbeat) {
		t.Error("LastHeartbeat should advance on Heartbeat")
	}
	if got.Status != StatusOnline {
		t.Errorf("Status = %q, want unchanged %q", got.Status, StatusOnline)
	}
	if len(pub.byType(EventStatusChange)) != 0 {
		t.Error("heartbeat without status change should not emit status_change")
	}

	if err := s.Heartbeat("no-such-id", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestStore_Heartbeat_StatusTransitions(t *testing.T) {
	pub := &capturePublisher{}
	s := New(pub)
	rec, _ := s.Register(testRegistration("svc", "9001"))

	if err := s.Heartbeat(rec.ID, StatusBusy); err != nil {
		t.Fatalf("Heartbeat(busy) returned error: %v", err)
	}
	got, _ := s.Get(rec.ID)
	if got.Status != StatusBusy {
		t.Errorf("Status = %q, want %q", got.Status, StatusBusy)
	}

	// Self-transition does not emit.
	if err := s.Heartbeat(rec.ID, StatusBusy); err != nil {
		t.Fatalf("Heartbeat(busy) returned error: %v", err)
	}
	events := pub.byType(EventStatusChange)
	if len(events) != 1 {
		t.Fatalf("got %d status_change events, want 1", len(events))
	}
	change := events[0].data.(*StatusChange)
	if change.Prev != StatusOnline || change.Next != StatusBusy {
		t.Errorf("transition = %s->%s, want online->busy", change.Prev, change.Next)
	}

	// Offline is reserved for the sweep.
	if err := s.Heartbeat(rec.ID, StatusOffline); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Heartbeat(offline) error = %v, want ErrInvalidStatus", err)
	}
}

func TestStore_SetStatus(t *testing.T) {
	pub := &capturePublisher{}
	s := New(pub)
	rec, _ := s.Register(testRegistration("svc", "9001"))
	before, _ := s.Get(rec.ID)

	time.Sleep(10 * time.Millisecond)
	if err := s.SetStatus(rec.ID, StatusBusy); err != nil {
		t.Fatalf("SetStatus returned error: %v", err)
	}

	got, _ := s.Get(rec.ID)
	if got.Status != StatusBusy {
		t.Errorf("Status = %q, want %q", got.Status, StatusBusy)
	}
	if !got.LastHeartbeat.Equal(before.LastHeartbeat) {
		t.Error("SetStatus should not touch the heartbeat")
	}

	if err := s.SetStatus(rec.ID, StatusOffline); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("SetStatus(offline) error = %v, want ErrInvalidStatus", err)
	}
	if err := s.SetStatus("no-such-id", StatusBusy); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestStore_OfflineRecoversViaHeartbeat(t *testing.T) {
	s := New(nil)
	rec, _ := s.Register(testRegistration("svc", "9001"))

	s.mu.Lock()
	s.records[rec.ID].LastHeartbeat = time.Now().Add(-time.Minute)
	s.mu.Unlock()
	s.MarkStale(30 * time.Second)

	if err := s.Heartbeat(rec.ID, StatusOnline); err != nil {
		t.Fatalf("Heartbeat returned error: %v", err)
	}
	got, _ := s.Get(rec.ID)
	if got.Status != StatusOnline {
		t.Errorf("Status = %q, want %q after recovery heartbeat", got.Status, StatusOnline)
	}
}

func TestStore_Offline_RejectsOtherTransitions(t *testing.T) {
	pub := &capturePublisher{}
	s := New(pub)
	rec, _ := s.Register(testRegistration("svc", "9001"))

	s.mu.Lock()
	s.records[rec.ID].LastHeartbeat = time.Now().Add(-time.Minute)
	s.mu.Unlock()
	s.MarkStale(30 * time.Second)

	if err := s.Heartbeat(rec.ID, StatusBusy); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Heartbeat(busy) on offline record error = %v, want ErrInvalidStatus", err)
	}
	if err := s.SetStatus(rec.ID, StatusBusy); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("SetStatus(busy) on offline record error = %v, want ErrInvalidStatus", err)
	}
	if err := s.SetStatus(rec.ID, StatusOnline); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("SetStatus(online) on offline record error = %v, want ErrInvalidStatus", err)
	}

	got, _ := s.Get(rec.ID)
	if got.Status != StatusOffline {
		t.Errorf("Status = %q, want still %q", got.Status, StatusOffline)
	}
	// Only the sweep's own demotion may have been announced.
	if events := pub.byType(EventStatusChange); len(events) != 1 {
		t.Errorf("got %d status_change events, want 1", len(events))
	}
}

func TestStore_MarkStale(t *testing.T) {
	pub := &capturePublisher{}
	s := New(pub)
	stale, _ := s.Register(testRegistration("stale", "9001"))
	fresh, _ := s.Register(testRegistration("fresh", "9002"))

	s.mu.Lock()
	s.records[stale.ID].LastHeartbeat = time.Now().Add(-time.Minute)
	s.mu.Unlock()

	changes := s.MarkStale(30 * time.Second)
	if len(changes) != 1 {
		t.Fatalf("got %d transitions, want 1", len(changes))
	}
	if changes[0].ServiceID != stale.ID || changes[0].Prev != StatusOnline || changes[0].Next != StatusOffline {
		t.Errorf("unexpected transition: %+v", changes[0])
	}

	got, _ := s.Get(stale.ID)
	if got.Status != StatusOffline {
		t.Errorf("Status = %q, want %q", got.Status, StatusOffline)
	}
	got, _ = s.Get(fresh.ID)
	if got.Status != StatusOnline {
		t.Errorf("fresh record Status = %q, want %q", got.Status, StatusOnline)
	}

	// Second sweep must not double-emit.
	if changes := s.MarkStale(30 * time.Second); len(changes) != 0 {
		t.Errorf("second sweep produced %d transitions, want 0", len(changes))
	}
	if events := pub.byType(EventStatusChange); len(events) != 1 {
		t.Errorf("got %d status_change events, want 1", len(events))
	}

	// Offline records stay listable.
	if len(s.List(Filter{})) != 2 {
		t.Error("offline records should remain listable")
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New(nil)
	var wg sync.WaitGroup
	const goroutines = 50

	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(n int) {
			defer wg.Done()
			switch n % 4 {
			case 0:
				_, _ = s.Register(testRegistration("concurrent", "9001"))
			case 1:
				s.List(Filter{})
			case 2:
				_, _ = s.LookupForDispatch("concurrent")
			default:
				s.MarkStale(30 * time.Second)
			}
		}(i)
	}
	wg.Wait()

	rec, err := s.Register(testRegistration("final", "9999"))
	if err != nil {
		t.Fatalf("Register after concurrent access: %v", err)
	}
	if _, err := s.Get(rec.ID); err != nil {
		t.Errorf("Get after concurrent access: %v", err)
	}
}
