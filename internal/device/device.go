// Package device abstracts the platform media primitive the engine drives:
// load/play/pause/seek/volume plus timeUpdate and ended events.
package device

import (
	"context"
	"errors"
)

// ErrInterrupted is returned by an in-flight Play when a newer device
// command supersedes it. The serializer swallows it; it never reaches
// engine callers.
var ErrInterrupted = errors.New("device command interrupted")

// EventKind identifies a device event.
type EventKind int

const (
	EventTimeUpdate EventKind = iota
	EventEnded
)

// Event is emitted by a Device while a resource plays.
type Event struct {
	Kind     EventKind
	Position float64 // seconds
	Duration float64 // seconds
}

// Device is the playback device contract.
//
// Play blocks until the command settles and returns ErrInterrupted
// when a newer command cancels it through ctx. All device commands
// must go through a Serializer; the engine is the sole caller.
type Device interface {
	// Load attaches a media resource without starting playback.
	Load(uri string) error
	// Play resumes the loaded resource.
	Play(ctx context.Context) error
	// Pause suspends playback. No-op when nothing is loaded.
	Pause() error
	// SeekTo moves the playhead to an absolute position in seconds.
	SeekTo(seconds float64)
	// SetVolume applies an effective volume in [0,1].
	SetVolume(v float64)
	// Unload detaches the current resource, keeping the device usable.
	Unload()
	Position() float64
	Duration() float64
	// Events delivers timeUpdate and ended events. The channel is
	// closed by Close.
	Events() <-chan Event
	Close() error
}
