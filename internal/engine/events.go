package engine

import "github.com/tonearm/tonearm/internal/catalog"

// StateChange is emitted when any field of the playback state changes.
type StateChange struct {
	State State
}

// TrackChange is emitted when the current track is replaced.
//
// Emitted by PlayTrack (and everything that delegates to it: next,
// previous, play-all, queue advance on ended) and by ClosePlayer with
// a nil Current. Pausing and resuming the same track does not emit.
type TrackChange struct {
	Previous *catalog.Track
	Current  *catalog.Track
}

// QueueChange is emitted when the queue contents change.
type QueueChange struct {
	Tracks []catalog.Track
}

// ModeChange is emitted when shuffle or repeat flips.
type ModeChange struct {
	Shuffle bool
	Repeat  bool
}

// ProgressChange is emitted on seek and on device timeUpdate events.
type ProgressChange struct {
	Progress float64 // 0..100
}
