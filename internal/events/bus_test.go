package events

import (
	"sync"
	"testing"
	"time"
)

func recvEvent(t *testing.T, sub *Subscription) Event {
	t.Helper()
	select {
	case evt, ok := <-sub.C():
		if !ok {
			t.Fatal("subscription channel closed unexpectedly")
		}
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func TestBus_SubscribeDeliversConnectionEvent(t *testing.T) {
	b := NewBus(nil)
	sub := b.Subscribe()
	defer b.Unsubscribe(sub)

	evt := recvEvent(t, sub)
	if evt.Type != TypeConnection {
		t.Errorf("Type = %q, want %q", evt.Type, TypeConnection)
	}
	if evt.Seq == 0 {
		t.Error("connection event should carry a sequence number")
	}
}

func TestBus_PublishFanOut(t *testing.T) {
	b := NewBus(nil)
	a := b.Subscribe()
	c := b.Subscribe()
	defer b.Unsubscribe(a)
	defer b.Unsubscribe(c)

	recvEvent(t, a)
	recvEvent(t, c)

	b.Publish("service_registered", "svc", map[string]string{"service_id": "id-1"})

	for _, sub := range []*Subscription{a, c} {
		evt := recvEvent(t, sub)
		if evt.Type != "service_registered" {
			t.Errorf("Type = %q, want service_registered", evt.Type)
		}
		if evt.ServiceName != "svc" {
			t.Errorf("ServiceName = %q, want svc", evt.ServiceName)
		}
	}
}

func TestBus_SequenceStrictlyIncreasing(t *testing.T) {
	b := NewBus(nil)
	sub := b.Subscribe()
	defer b.Unsubscribe(sub)

	for i := 0; i < 10; i++ {
		b.Publish("status_change", "svc", nil)
	}

	var last uint64
	for i := 0; i < 11; i++ { // connection event + 10 published
		evt := recvEvent(t, sub)
		if evt.Seq <= last {
			t.Fatalf("seq %d not greater than previous %d", evt.Seq, last)
		}
		last = evt.Seq
	}
}

func TestBus_SlowSubscriberIsolation(t *testing.T) {
	b := NewBus(nil)
	slow := b.Subscribe()
	fast := b.Subscribe()
	defer b.Unsubscribe(slow)
	defer b.Unsubscribe(fast)

	recvEvent(t, fast)

	// Overflow the slow subscriber's buffer; it never reads.
	for i := 0; i < DefaultBufferSize+10; i++ {
		b.Publish("status_change", "svc", nil)
		recvEvent(t, fast)
	}

	if slow.Dropped() == 0 {
		t.Error("expected drops for the slow subscriber")
	}
	if b.SubscriberCount() != 2 {
		t.Errorf("SubscriberCount = %d, want 2 (slow subscriber stays attached)", b.SubscriberCount())
	}

	// The slow subscriber's buffered prefix is still in order.
	var last uint64
	for i := 0; i < DefaultBufferSize; i++ {
		evt := recvEvent(t, slow)
		if evt.Seq <= last {
			t.Fatalf("seq %d not greater than previous %d", evt.Seq, last)
		}
		last = evt.Seq
	}
}

func TestBus_DroppedReadableDuringPublish(t *testing.T) {
	b := NewBus(nil)
	sub := b.Subscribe()
	defer b.Unsubscribe(sub)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < DefaultBufferSize*4; i++ {
			b.Publish("status_change", "svc", nil)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = sub.Dropped()
		}
	}()
	wg.Wait()

	// Buffer holds the connection event plus DefaultBufferSize-1 more.
	if got := sub.Dropped(); got == 0 {
		t.Error("expected drops once the buffer filled")
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	b := NewBus(nil)
	sub := b.Subscribe()
	b.Unsubscribe(sub)

	if b.SubscriberCount() != 0 {
		t.Errorf("SubscriberCount = %d, want 0", b.SubscriberCount())
	}

	// Channel drains its buffer, then reports closed.
	for {
		if _, ok := <-sub.C(); !ok {
			break
		}
	}

	// Double unsubscribe must not panic.
	b.Unsubscribe(sub)
}

func TestBus_Close(t *testing.T) {
	b := NewBus(nil)
	sub := b.Subscribe()
	recvEvent(t, sub)

	b.Close()

	if _, ok := <-sub.C(); ok {
		t.Error("expected closed channel after bus close")
	}

	b.Publish("status_change", "svc", nil)

	late := b.Subscribe()
	if _, ok := <-late.C(); ok {
		t.Error("subscription after close should get a closed channel")
	}
}
