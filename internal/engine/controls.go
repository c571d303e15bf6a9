package engine

import (
	"context"

	"github.com/tonearm/tonearm/internal/catalog"
	"github.com/tonearm/tonearm/internal/device"
)

const volumeStep = 0.05

// PlayTrack makes t the current track and starts it from the
// beginning. Playing the track that is already current toggles
// play/pause instead of restarting it.
func (e *Engine) PlayTrack(t catalog.Track) {
	e.mu.Lock()
	if cur := e.state.CurrentTrack; cur != nil && cur.ID == t.ID {
		e.mu.Unlock()
		e.TogglePlay()
		return
	}

	prev := e.state.CurrentTrack
	tc := t
	e.state.CurrentTrack = &tc
	e.state.IsPlaying = true
	e.state.Progress = 0
	e.recent.Push(tc)
	queueChanged := e.queue.Append(tc)
	e.mu.Unlock()

	// The load runs even when a newer command has already superseded
	// this one: commands apply in issue order, and a later play without
	// its matching load would resume the wrong resource. Only the play
	// itself is interruptible.
	uri := tc.AudioURI
	e.ser.Do("play track", func(ctx context.Context) error {
		if err := e.dev.Load(uri); err != nil {
			return err
		}
		return e.dev.Play(ctx)
	})

	e.persistCurrent()
	e.persistRecent()
	if queueChanged {
		e.persistQueue()
		e.emitQueue()
	}
	e.emitTrack(prev, &tc)
	e.emitState()
	e.emitProgress(0)
}

// TogglePlay flips between playing and paused. State flips
// immediately; the device catches up through the serialized command
// path, so rapid toggles always land on the parity the user sees.
func (e *Engine) TogglePlay() {
	e.mu.Lock()
	if e.state.CurrentTrack == nil {
		e.mu.Unlock()
		return
	}
	playing := !e.state.IsPlaying
	e.state.IsPlaying = playing
	e.mu.Unlock()

	if playing {
		e.ser.Do("play", func(ctx context.Context) error {
			return e.dev.Play(ctx)
		})
	} else {
		e.ser.Do("pause", func(ctx context.Context) error {
			return e.dev.Pause()
		})
	}
	e.emitState()
}

// NextTrack advances within the queue. With shuffle on it picks a
// random queue entry, which may be the current track again. With
// repeat on it wraps from the end back to the front. Otherwise the
// last track is a hard stop.
func (e *Engine) NextTrack() {
	if t, ok := e.pickNext(); ok {
		e.PlayTrack(t)
	}
}

// PrevTrack steps back one queue position. There is no wraparound and
// no restart-current behavior; at the front it does nothing.
func (e *Engine) PrevTrack() {
	e.mu.Lock()
	cur := e.state.CurrentTrack
	if cur == nil {
		e.mu.Unlock()
		return
	}
	var prev *catalog.Track
	if i := e.queue.IndexOf(cur.ID); i > 0 {
		prev = e.queue.Track(i - 1)
	}
	if prev == nil {
		e.mu.Unlock()
		return
	}
	t := *prev
	e.mu.Unlock()

	e.PlayTrack(t)
}

func (e *Engine) pickNext() (catalog.Track, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cur := e.state.CurrentTrack
	n := e.queue.Len()
	if cur == nil || n == 0 {
		return catalog.Track{}, false
	}
	if e.state.Shuffle {
		return *e.queue.Track(e.rng.Intn(n)), true
	}
	if i := e.queue.IndexOf(cur.ID); i >= 0 && i+1 < n {
		return *e.queue.Track(i + 1), true
	}
	if e.state.Repeat {
		return *e.queue.Track(0), true
	}
	return catalog.Track{}, false
}

// Seek jumps to a position expressed as a percentage of the track.
// Without a current track or a known duration it does nothing.
func (e *Engine) Seek(percent float64) {
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}

	e.mu.Lock()
	cur := e.state.CurrentTrack
	if cur == nil {
		e.mu.Unlock()
		return
	}
	duration := e.dev.Duration()
	if duration <= 0 {
		duration = float64(cur.Duration)
	}
	if duration <= 0 {
		e.mu.Unlock()
		return
	}
	e.state.Progress = percent
	e.mu.Unlock()

	e.dev.SeekTo(percent / 100 * duration)
	e.emitProgress(percent)
}

// SetVolume sets the level. Raising it above zero unmutes; setting it
// to exactly zero mutes.
func (e *Engine) SetVolume(v float64) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}

	e.mu.Lock()
	e.state.Volume = v
	// Volume and mute stay coupled: zero mutes, audible unmutes.
	e.state.Muted = v == 0
	effective := e.state.effectiveVolume()
	e.mu.Unlock()

	e.dev.SetVolume(effective)
	e.persistPlayer()
	e.emitState()
}

// VolumeUp raises the level by one step.
func (e *Engine) VolumeUp() {
	e.mu.RLock()
	v := e.state.Volume
	e.mu.RUnlock()
	e.SetVolume(v + volumeStep)
}

// VolumeDown lowers the level by one step.
func (e *Engine) VolumeDown() {
	e.mu.RLock()
	v := e.state.Volume
	e.mu.RUnlock()
	e.SetVolume(v - volumeStep)
}

// ToggleMute flips mute without losing the stored level. Unmuting at
// level zero restores an audible 0.5 so the control never feels dead.
func (e *Engine) ToggleMute() {
	e.mu.Lock()
	e.state.Muted = !e.state.Muted
	if !e.state.Muted && e.state.Volume == 0 {
		e.state.Volume = 0.5
	}
	effective := e.state.effectiveVolume()
	e.mu.Unlock()

	e.dev.SetVolume(effective)
	e.persistPlayer()
	e.emitState()
}

// ToggleShuffle flips shuffle mode.
func (e *Engine) ToggleShuffle() {
	e.mu.Lock()
	e.state.Shuffle = !e.state.Shuffle
	e.mu.Unlock()

	e.persistPlayer()
	e.emitMode()
	e.emitState()
}

// ToggleRepeat flips repeat mode.
func (e *Engine) ToggleRepeat() {
	e.mu.Lock()
	e.state.Repeat = !e.state.Repeat
	e.mu.Unlock()

	e.persistPlayer()
	e.emitMode()
	e.emitState()
}

// SetFullPlayerOpen records whether the expanded player view is open.
func (e *Engine) SetFullPlayerOpen(open bool) {
	e.mu.Lock()
	changed := e.state.FullPlayerOpen != open
	e.state.FullPlayerOpen = open
	e.mu.Unlock()

	if changed {
		e.emitState()
	}
}

// ClosePlayer stops playback and clears the current track. The queue
// survives; only the now-playing slot empties.
func (e *Engine) ClosePlayer() {
	e.mu.Lock()
	prev := e.state.CurrentTrack
	e.state.CurrentTrack = nil
	e.state.IsPlaying = false
	e.state.Progress = 0
	e.state.FullPlayerOpen = false
	e.mu.Unlock()

	e.ser.Do("close player", func(ctx context.Context) error {
		if err := e.dev.Pause(); err != nil {
			return err
		}
		e.dev.Unload()
		return nil
	})

	e.persistCurrent()
	e.emitTrack(prev, nil)
	e.emitState()
}

// onTimeUpdate reconciles progress with the position the device
// reports.
func (e *Engine) onTimeUpdate(ev device.Event) {
	if ev.Duration <= 0 {
		return
	}
	progress := ev.Position / ev.Duration * 100
	if progress < 0 {
		progress = 0
	} else if progress > 100 {
		progress = 100
	}

	e.mu.Lock()
	if e.state.CurrentTrack == nil {
		e.mu.Unlock()
		return
	}
	e.state.Progress = progress
	e.mu.Unlock()

	e.emitProgress(progress)
}

// onEnded decides what follows a track that finished on its own:
// repeat replays it, otherwise the queue advances, otherwise playback
// stops with the track still loaded.
func (e *Engine) onEnded() {
	e.mu.Lock()
	cur := e.state.CurrentTrack
	repeat := e.state.Repeat
	if cur == nil {
		e.mu.Unlock()
		return
	}
	if repeat {
		e.state.Progress = 0
		e.state.IsPlaying = true
		e.mu.Unlock()

		e.ser.Do("replay", func(ctx context.Context) error {
			e.dev.SeekTo(0)
			return e.dev.Play(ctx)
		})
		e.emitProgress(0)
		e.emitState()
		return
	}
	e.mu.Unlock()

	if t, ok := e.pickNext(); ok {
		e.PlayTrack(t)
		return
	}

	e.mu.Lock()
	e.state.IsPlaying = false
	e.mu.Unlock()
	e.emitState()
}
