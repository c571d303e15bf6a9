package playlists

import (
	"math/rand"
	"testing"

	"github.com/tonearm/tonearm/internal/catalog"
)

func track(id string) catalog.Track {
	return catalog.Track{ID: id, Title: "Track " + id}
}

func TestStore_Create(t *testing.T) {
	s := NewStore("me")

	p := s.Create("Night", "late hours", nil)

	if p.ID == "" {
		t.Error("Create returned empty ID")
	}
	if p.Creator != "me" {
		t.Errorf("Creator = %q, want %q", p.Creator, "me")
	}
	if p.TrackCount != 0 || len(p.TrackIDs) != 0 {
		t.Errorf("new playlist not empty: count=%d ids=%v", p.TrackCount, p.TrackIDs)
	}
}

func TestStore_Create_WithInitialTrack(t *testing.T) {
	s := NewStore("me")
	x := track("x")

	p := s.Create("Night", "", &x)

	if p.TrackCount != 1 {
		t.Errorf("TrackCount = %d, want 1", p.TrackCount)
	}
	if len(p.TrackIDs) != 1 || p.TrackIDs[0] != "x" {
		t.Errorf("TrackIDs = %v, want [x]", p.TrackIDs)
	}
}

func TestStore_AddTrack_Idempotent(t *testing.T) {
	s := NewStore("me")
	x := track("x")
	p := s.Create("Night", "", &x)

	if s.AddTrack(p.ID, x) {
		t.Error("adding a present track should report no change")
	}

	got := s.Get(p.ID)
	if got.TrackCount != 1 {
		t.Errorf("TrackCount = %d, want 1", got.TrackCount)
	}
}

func TestStore_CountInvariant(t *testing.T) {
	s := NewStore("me")
	p := s.Create("mix", "", nil)

	ops := []func(){
		func() { s.AddTrack(p.ID, track("a")) },
		func() { s.AddTrack(p.ID, track("b")) },
		func() { s.AddTrack(p.ID, track("c")) },
		func() { s.RemoveTrack(p.ID, "b") },
		func() { s.Reorder(p.ID, "c", Up) },
		func() { s.AddTrack(p.ID, track("d")) },
		func() { s.RemoveTrack(p.ID, "missing") },
	}
	for i, op := range ops {
		op()
		got := s.Get(p.ID)
		if got.TrackCount != len(got.TrackIDs) {
			t.Fatalf("after op %d: TrackCount = %d, len(TrackIDs) = %d",
				i, got.TrackCount, len(got.TrackIDs))
		}
	}
}

func TestStore_Reorder(t *testing.T) {
	s := NewStore("me")
	p := s.Create("mix", "", nil)
	s.AddTrack(p.ID, track("a"))
	s.AddTrack(p.ID, track("b"))
	s.AddTrack(p.ID, track("c"))

	if !s.Reorder(p.ID, "b", Up) {
		t.Error("Reorder(b, up) should change order")
	}
	got := s.Get(p.ID).TrackIDs
	want := []string{"b", "a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("TrackIDs = %v, want %v", got, want)
		}
	}
}

func TestStore_Reorder_Boundaries(t *testing.T) {
	s := NewStore("me")
	p := s.Create("mix", "", nil)
	s.AddTrack(p.ID, track("a"))
	s.AddTrack(p.ID, track("b"))

	if s.Reorder(p.ID, "a", Up) {
		t.Error("moving first track up should be a no-op")
	}
	if s.Reorder(p.ID, "b", Down) {
		t.Error("moving last track down should be a no-op")
	}
	got := s.Get(p.ID).TrackIDs
	if got[0] != "a" || got[1] != "b" {
		t.Errorf("TrackIDs = %v, want [a b]", got)
	}
}

func TestStore_UpdateMeta(t *testing.T) {
	s := NewStore("me")
	p := s.Create("old", "desc", nil)

	title := "new"
	if !s.UpdateMeta(p.ID, Meta{Title: &title}) {
		t.Fatal("UpdateMeta returned false")
	}

	got := s.Get(p.ID)
	if got.Title != "new" {
		t.Errorf("Title = %q, want %q", got.Title, "new")
	}
	if got.Description != "desc" {
		t.Errorf("Description = %q, want %q (untouched)", got.Description, "desc")
	}
}

func TestStore_Delete(t *testing.T) {
	s := NewStore("me")
	p := s.Create("mix", "", nil)

	if !s.Delete(p.ID) {
		t.Error("Delete of existing playlist returned false")
	}
	if s.Delete(p.ID) {
		t.Error("Delete of missing playlist returned true")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestStore_UnknownPlaylist_NoOps(t *testing.T) {
	s := NewStore("me")

	if s.AddTrack("missing", track("a")) {
		t.Error("AddTrack on unknown playlist returned true")
	}
	if s.RemoveTrack("missing", "a") {
		t.Error("RemoveTrack on unknown playlist returned true")
	}
	if s.Reorder("missing", "a", Down) {
		t.Error("Reorder on unknown playlist returned true")
	}
	if s.UpdateMeta("missing", Meta{}) {
		t.Error("UpdateMeta on unknown playlist returned true")
	}
}

func TestRecommender_CreateIn(t *testing.T) {
	s := NewStore("me")
	r := NewRecommender("curator", 3, rand.New(rand.NewSource(1)))

	cat := []catalog.Track{track("a"), track("b"), track("c"), track("d"), track("e")}
	p := r.CreateIn(s, cat)

	if p == nil {
		t.Fatal("CreateIn returned nil for non-empty catalog")
	}
	if p.Creator != "curator" {
		t.Errorf("Creator = %q, want %q", p.Creator, "curator")
	}
	if p.TrackCount != 3 {
		t.Errorf("TrackCount = %d, want 3", p.TrackCount)
	}
	seen := make(map[string]bool)
	for _, id := range p.TrackIDs {
		if seen[id] {
			t.Errorf("duplicate track %s in recommended playlist", id)
		}
		seen[id] = true
	}
}

func TestRecommender_EmptyCatalog(t *testing.T) {
	s := NewStore("me")
	r := NewRecommender("curator", 3, rand.New(rand.NewSource(1)))

	if r.CreateIn(s, nil) != nil {
		t.Error("CreateIn on empty catalog should return nil")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}
