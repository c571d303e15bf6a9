package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddDeduplicatesByID(t *testing.T) {
	c := New(nil)

	if !c.Add(Track{ID: "a", Title: "First"}) {
		t.Fatal("first add rejected")
	}
	if c.Add(Track{ID: "a", Title: "Duplicate"}) {
		t.Fatal("duplicate id accepted")
	}
	if c.Add(Track{}) {
		t.Fatal("empty id accepted")
	}

	if c.Len() != 1 {
		t.Errorf("len = %d, want 1", c.Len())
	}
	if got := c.ByID("a"); got == nil || got.Title != "First" {
		t.Errorf("ByID(a) = %+v, want the first occurrence", got)
	}
}

func TestTrackIndexBounds(t *testing.T) {
	c := New([]Track{{ID: "a"}, {ID: "b"}})

	if got := c.Track(1); got == nil || got.ID != "b" {
		t.Errorf("Track(1) = %v, want b", got)
	}
	if c.Track(-1) != nil || c.Track(2) != nil {
		t.Error("out of bounds index returned a track")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `[
		{"id": "a", "title": "One", "artist": "X", "audioUri": "file:///a.mp3", "duration": 180},
		{"id": "b", "title": "Two", "artist": "Y", "audioUri": "file:///b.mp3", "duration": 200},
		{"id": "a", "title": "Shadowed", "audioUri": "file:///dup.mp3"}
	]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("len = %d, want 2 (duplicate dropped)", c.Len())
	}
	if got := c.ByID("a"); got.Title != "One" {
		t.Errorf("title = %q, want One", got.Title)
	}
}

func TestLoadFileRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("no error for malformed catalog")
	}
}
