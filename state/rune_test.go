package state

import (
	"sync"
	"testing"
)

func TestNewRune(t *testing.T) {
	r := NewRune(true)
	if !r.Get() {
		t.Error("Expected initial value true")
	}

	s := NewRune("hello")
	if s.Get() != "hello" {
		t.Errorf("Expected initial value 'hello', got %s", s.Get())
	}
}

func TestRuneSetNotifiesOnChange(t *testing.T) {
	r := NewRune(true)
	var received []bool
	unsub := r.Subscribe(func(v bool) {
		received = append(received, v)
	})
	defer unsub()

	r.Set(false)
	r.Set(false)
	r.Set(true)

	if len(received) != 2 {
		t.Fatalf("Expected 2 notifications, got %d", len(received))
	}
	if received[0] != false || received[1] != true {
		t.Errorf("Expected [false true], got %v", received)
	}
}

func TestRuneUnsubscribe(t *testing.T) {
	r := NewRune(0)
	calls := 0
	unsub := r.Subscribe(func(int) { calls++ })

	r.Set(1)
	unsub()
	r.Set(2)

	if calls != 1 {
		t.Errorf("Expected 1 notification, got %d", calls)
	}
}

func TestRuneUpdate(t *testing.T) {
	r := NewRune(1)
	r.Update(func(v int) int { return v + 1 })
	if r.Get() != 2 {
		t.Errorf("Expected 2, got %d", r.Get())
	}
}

func TestRuneSubscriberCanRead(t *testing.T) {
	r := NewRune(false)
	var seen bool
	r.Subscribe(func(bool) { seen = r.Get() })

	r.Set(true)
	if !seen {
		t.Error("Expected subscriber to read the new value")
	}
}

func TestRuneConcurrentSet(t *testing.T) {
	r := NewRune(0)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Update(func(v int) int { return v + 1 })
		}()
	}
	wg.Wait()

	if r.Get() != 100 {
		t.Errorf("Expected 100, got %d", r.Get())
	}
}
