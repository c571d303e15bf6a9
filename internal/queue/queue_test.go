package queue

import (
	"testing"

	"github.com/tonearm/tonearm/internal/catalog"
)

func track(id string) catalog.Track {
	return catalog.Track{ID: id, Title: "Track " + id}
}

func TestNew(t *testing.T) {
	q := New()

	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
	if !q.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
	if q.IndexOf("a") != -1 {
		t.Errorf("IndexOf() = %d, want -1", q.IndexOf("a"))
	}
}

func TestQueue_Append(t *testing.T) {
	q := New()

	if !q.Append(track("a")) {
		t.Error("Append of new track returned false")
	}
	if !q.Append(track("b")) {
		t.Error("Append of new track returned false")
	}
	if q.Len() != 2 {
		t.Errorf("Len() = %d, want 2", q.Len())
	}
}

func TestQueue_Append_Duplicate(t *testing.T) {
	q := New()
	q.Append(track("a"))

	if q.Append(track("a")) {
		t.Error("Append of duplicate ID returned true")
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1", q.Len())
	}
}

func TestQueue_Replace(t *testing.T) {
	q := New()
	q.Append(track("old"))

	q.Replace([]catalog.Track{track("a"), track("b"), track("c")})

	if q.Len() != 3 {
		t.Errorf("Len() = %d, want 3", q.Len())
	}
	if q.Contains("old") {
		t.Error("replaced queue still contains old track")
	}
	if q.IndexOf("b") != 1 {
		t.Errorf("IndexOf(b) = %d, want 1", q.IndexOf("b"))
	}
}

func TestQueue_Track_OutOfBounds(t *testing.T) {
	q := New()
	q.Append(track("a"))

	if q.Track(-1) != nil {
		t.Error("Track(-1) should be nil")
	}
	if q.Track(1) != nil {
		t.Error("Track(1) should be nil")
	}
	if got := q.Track(0); got == nil || got.ID != "a" {
		t.Errorf("Track(0) = %v, want track a", got)
	}
}

func TestQueue_TracksIsCopy(t *testing.T) {
	q := New()
	q.Append(track("a"))

	tracks := q.Tracks()
	tracks[0].ID = "mutated"

	if q.Track(0).ID != "a" {
		t.Error("Tracks() exposed internal storage")
	}
}

func TestRecent_PushAndBound(t *testing.T) {
	r := NewRecent(10)

	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o"}
	for _, id := range ids {
		r.Push(track(id))
	}

	if r.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", r.Len())
	}
	got := r.Tracks()
	// Most recent first: the last 10 pushed, reversed.
	want := []string{"o", "n", "m", "l", "k", "j", "i", "h", "g", "f"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Tracks()[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestRecent_PushDeduplicates(t *testing.T) {
	r := NewRecent(10)
	r.Push(track("a"))
	r.Push(track("b"))
	r.Push(track("a"))

	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	got := r.Tracks()
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("Tracks() = [%s %s], want [a b]", got[0].ID, got[1].ID)
	}
}

func TestRecent_Clear(t *testing.T) {
	r := NewRecent(10)
	r.Push(track("a"))

	r.Clear()

	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}
