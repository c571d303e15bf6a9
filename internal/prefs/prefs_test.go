package prefs

import "testing"

func TestToggleLike(t *testing.T) {
	s := New()

	if !s.ToggleLike("t1") {
		t.Error("first toggle should add")
	}
	if !s.IsLiked("t1") {
		t.Error("t1 should be liked after first toggle")
	}
	if s.ToggleLike("t1") {
		t.Error("second toggle should remove")
	}
	if s.IsLiked("t1") {
		t.Error("t1 should not be liked after second toggle")
	}
}

func TestToggleLike_Idempotent(t *testing.T) {
	s := New()
	s.ToggleLike("keep")

	// Double-toggling any ID restores original membership.
	for _, id := range []string{"keep", "other"} {
		before := s.IsLiked(id)
		s.ToggleLike(id)
		s.ToggleLike(id)
		if s.IsLiked(id) != before {
			t.Errorf("double toggle changed membership of %q", id)
		}
	}
}

func TestToggleFollow(t *testing.T) {
	s := New()

	if !s.ToggleFollow("u1") {
		t.Error("first toggle should add")
	}
	if s.ToggleFollow("u1") {
		t.Error("second toggle should remove")
	}
}

func TestLikedIDs_Sorted(t *testing.T) {
	s := New()
	s.ToggleLike("c")
	s.ToggleLike("a")
	s.ToggleLike("b")

	got := s.LikedIDs()
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("LikedIDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LikedIDs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoad(t *testing.T) {
	s := New()
	s.ToggleLike("old")

	s.LoadLiked([]string{"x", "y"})
	s.LoadFollowed([]string{"u"})

	if s.IsLiked("old") {
		t.Error("Load should replace, not merge")
	}
	if !s.IsLiked("x") || !s.IsLiked("y") {
		t.Error("loaded liked IDs missing")
	}
	if !s.IsFollowed("u") {
		t.Error("loaded followed ID missing")
	}
}
