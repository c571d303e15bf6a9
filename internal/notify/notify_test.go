package notify

import (
	"fmt"
	"testing"
	"time"
)

func TestBus_Push(t *testing.T) {
	b := NewBus()
	defer b.Close()

	id := b.Push("saved", Success, time.Minute)

	active := b.Active()
	if len(active) != 1 {
		t.Fatalf("Active() has %d items, want 1", len(active))
	}
	if active[0].ID != id {
		t.Errorf("ID = %q, want %q", active[0].ID, id)
	}
	if active[0].Severity != Success {
		t.Errorf("Severity = %q, want %q", active[0].Severity, Success)
	}
}

func TestBus_Defaults(t *testing.T) {
	b := NewBus()
	defer b.Close()

	b.Push("hello", "", 0)

	active := b.Active()
	if len(active) != 1 {
		t.Fatalf("Active() has %d items, want 1", len(active))
	}
	if active[0].Severity != Info {
		t.Errorf("Severity = %q, want %q", active[0].Severity, Info)
	}
	if active[0].Lifespan != DefaultLifespan {
		t.Errorf("Lifespan = %v, want %v", active[0].Lifespan, DefaultLifespan)
	}
}

func TestBus_Expiry(t *testing.T) {
	b := NewBus()
	defer b.Close()

	b.Push("short lived", Info, 20*time.Millisecond)
	b.Push("long lived", Info, time.Minute)

	deadline := time.After(2 * time.Second)
	for len(b.Active()) > 1 {
		select {
		case <-deadline:
			t.Fatal("notification never expired")
		case <-time.After(5 * time.Millisecond):
		}
	}

	active := b.Active()
	if len(active) != 1 || active[0].Message != "long lived" {
		t.Errorf("Active() = %v, want only the long-lived entry", active)
	}
}

func TestBus_ConcurrentVisibility(t *testing.T) {
	b := NewBus()
	defer b.Close()

	b.Push("one", Info, time.Minute)
	b.Push("two", Warning, time.Minute)
	b.Push("three", Error, time.Minute)

	if got := len(b.Active()); got != 3 {
		t.Errorf("Active() has %d items, want 3", got)
	}
}

func TestBus_BoundedDefensively(t *testing.T) {
	b := NewBus()
	defer b.Close()

	for i := range maxVisible + 5 {
		b.Push(fmt.Sprintf("n%d", i), Info, time.Minute)
	}

	active := b.Active()
	if len(active) != maxVisible {
		t.Fatalf("Active() has %d items, want %d", len(active), maxVisible)
	}
	// Oldest entries were evicted.
	if active[0].Message != "n5" {
		t.Errorf("oldest visible = %q, want n5", active[0].Message)
	}
}

func TestBus_CloseStopsTimers(t *testing.T) {
	b := NewBus()
	b.Push("pending", Info, 10*time.Millisecond)

	b.Close()
	time.Sleep(30 * time.Millisecond)

	if got := len(b.Active()); got != 0 {
		t.Errorf("Active() has %d items after Close, want 0", got)
	}
}
