// Package engine is the playback and queue-coordination engine: one
// authoritative now-playing state, a play queue, user preference
// state, and the serialized command path to the playback device.
//
// Every operation is safe to call from UI event handlers: none of
// them blocks on the device, none of them returns an error, and
// precondition violations are silent no-ops.
package engine

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tonearm/tonearm/internal/catalog"
	"github.com/tonearm/tonearm/internal/device"
	"github.com/tonearm/tonearm/internal/errmsg"
	"github.com/tonearm/tonearm/internal/notify"
	"github.com/tonearm/tonearm/internal/playlists"
	"github.com/tonearm/tonearm/internal/prefs"
	"github.com/tonearm/tonearm/internal/queue"
	"github.com/tonearm/tonearm/internal/store"
)

// Options configures an Engine.
type Options struct {
	Owner           string        // identity for user-created playlists
	Curator         string        // identity for generated playlists
	RecommendedSize int           // tracks per generated playlist
	RecentLimit     int           // recently-played bound (default 10)
	DefaultLifespan time.Duration // notification lifespan when callers pass 0
	Catalog         []catalog.Track
	Rand            *rand.Rand // shuffle and recommendation source; nil seeds from the clock
	Logger          zerolog.Logger
}

// Engine owns the playback device exclusively; no other component may
// call device primitives directly.
type Engine struct {
	mu      sync.RWMutex
	state   State
	queue   *queue.Queue
	recent  *queue.Recent
	lists   *playlists.Store
	sets    *prefs.Sets
	rec     *playlists.Recommender
	rng     *rand.Rand
	catalog []catalog.Track

	dev   device.Device
	ser   *device.Serializer
	store *store.Manager
	bus   *notify.Bus
	log   zerolog.Logger

	lifespan time.Duration

	subs   []*Subscription
	subsMu sync.RWMutex

	done   chan struct{}
	closed bool
}

// New creates the engine, hydrates it from the store, and primes the
// device with the restored current track (paused; playback never
// survives a cold start).
func New(dev device.Device, st *store.Manager, opts Options) *Engine {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	lifespan := opts.DefaultLifespan
	if lifespan <= 0 {
		lifespan = notify.DefaultLifespan
	}

	e := &Engine{
		state:    defaultState(),
		queue:    queue.New(),
		recent:   queue.NewRecent(opts.RecentLimit),
		lists:    playlists.NewStore(opts.Owner),
		sets:     prefs.New(),
		rec:      playlists.NewRecommender(opts.Curator, opts.RecommendedSize, rng),
		rng:      rng,
		catalog:  opts.Catalog,
		dev:      dev,
		ser:      device.NewSerializer(opts.Logger),
		store:    st,
		bus:      notify.NewBus(),
		log:      opts.Logger,
		lifespan: lifespan,
		done:     make(chan struct{}),
	}

	e.hydrate()
	go e.eventLoop()
	return e
}

// hydrate restores every persisted slice, falling back to defaults on
// missing or malformed data. IsPlaying and Progress always start at
// rest.
func (e *Engine) hydrate() {
	if ps, err := e.store.GetPlayerState(); err != nil {
		e.log.Warn().Msg(errmsg.Format(errmsg.OpStateLoad, err))
	} else {
		e.state.Volume = ps.Volume
		e.state.Muted = ps.Muted
		e.state.Shuffle = ps.Shuffle
		e.state.Repeat = ps.Repeat
		e.state.CurrentTrack = ps.CurrentTrack
	}

	if tracks, err := e.store.GetQueue(); err != nil {
		e.log.Warn().Msg(errmsg.Format(errmsg.OpQueueLoad, err))
	} else {
		e.queue.Replace(tracks)
	}

	if tracks, err := e.store.GetRecent(); err != nil {
		e.log.Warn().Msg(errmsg.Format(errmsg.OpStateLoad, err))
	} else {
		e.recent.Replace(tracks)
	}

	if ids, err := e.store.GetLiked(); err != nil {
		e.log.Warn().Msg(errmsg.Format(errmsg.OpStateLoad, err))
	} else {
		e.sets.LoadLiked(ids)
	}

	if ids, err := e.store.GetFollowed(); err != nil {
		e.log.Warn().Msg(errmsg.Format(errmsg.OpStateLoad, err))
	} else {
		e.sets.LoadFollowed(ids)
	}

	if lists, err := e.store.GetPlaylists(); err != nil {
		e.log.Warn().Msg(errmsg.Format(errmsg.OpStateLoad, err))
	} else {
		e.lists.Load(lists)
	}

	e.dev.SetVolume(e.state.effectiveVolume())

	if t := e.state.CurrentTrack; t != nil {
		uri := t.AudioURI
		e.ser.Do("load", func(ctx context.Context) error {
			return e.dev.Load(uri)
		})
	}
}

// eventLoop reconciles engine state with what the device reports.
func (e *Engine) eventLoop() {
	for {
		select {
		case <-e.done:
			return
		case ev, ok := <-e.dev.Events():
			if !ok {
				return
			}
			switch ev.Kind {
			case device.EventTimeUpdate:
				e.onTimeUpdate(ev)
			case device.EventEnded:
				e.onEnded()
			}
		}
	}
}

// Subscribe creates a new event subscription.
func (e *Engine) Subscribe() *Subscription {
	e.subsMu.Lock()
	defer e.subsMu.Unlock()
	sub := newSubscription()
	e.subs = append(e.subs, sub)
	return sub
}

// Notifications exposes the user-feedback bus.
func (e *Engine) Notifications() *notify.Bus {
	return e.bus
}

// State returns a copy of the current playback state.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.snapshot()
}

// QueueTracks returns a copy of the play queue.
func (e *Engine) QueueTracks() []catalog.Track {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.queue.Tracks()
}

// RecentTracks returns the recently played list, most recent first.
func (e *Engine) RecentTracks() []catalog.Track {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.recent.Tracks()
}

// Playlists returns a copy of every playlist.
func (e *Engine) Playlists() []playlists.Playlist {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lists.All()
}

// Playlist returns a copy of one playlist, or nil.
func (e *Engine) Playlist(id string) *playlists.Playlist {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lists.Get(id)
}

// IsLiked reports whether a track is in the liked set.
func (e *Engine) IsLiked(trackID string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sets.IsLiked(trackID)
}

// IsFollowed reports whether a user is in the followed set.
func (e *Engine) IsFollowed(userID string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sets.IsFollowed(userID)
}

// LikedTrackIDs returns the liked set in sorted order.
func (e *Engine) LikedTrackIDs() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sets.LikedIDs()
}

// FollowedUserIDs returns the followed set in sorted order.
func (e *Engine) FollowedUserIDs() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sets.FollowedIDs()
}

// Catalog returns the catalog the engine was constructed with.
func (e *Engine) Catalog() []catalog.Track {
	result := make([]catalog.Track, len(e.catalog))
	copy(result, e.catalog)
	return result
}

// Wait blocks until pending device commands have settled. Intended
// for tests and teardown.
func (e *Engine) Wait() {
	e.ser.Wait()
}

// Close flushes pending device commands, detaches the device, and
// closes all subscriptions. The store stays open; its owner closes it.
func (e *Engine) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.mu.Unlock()

	e.ser.Do("close", func(ctx context.Context) error {
		if err := e.dev.Pause(); err != nil {
			return err
		}
		e.dev.Unload()
		return nil
	})
	e.ser.Wait()

	close(e.done)
	err := e.dev.Close()
	e.bus.Close()

	e.subsMu.Lock()
	for _, sub := range e.subs {
		sub.close()
	}
	e.subs = nil
	e.subsMu.Unlock()

	return err
}

// notify pushes a user-feedback message with the configured lifespan.
func (e *Engine) notify(message string, severity notify.Severity) {
	e.bus.Push(message, severity, e.lifespan)
}

// emit helpers: snapshot under the engine lock, fan out without it.

func (e *Engine) emitState() {
	e.mu.RLock()
	st := e.state.snapshot()
	e.mu.RUnlock()

	e.subsMu.RLock()
	defer e.subsMu.RUnlock()
	for _, sub := range e.subs {
		sub.sendState(StateChange{State: st})
	}
}

func (e *Engine) emitTrack(previous, current *catalog.Track) {
	e.subsMu.RLock()
	defer e.subsMu.RUnlock()
	for _, sub := range e.subs {
		sub.sendTrack(TrackChange{Previous: previous, Current: current})
	}
}

func (e *Engine) emitQueue() {
	e.mu.RLock()
	tracks := e.queue.Tracks()
	e.mu.RUnlock()

	e.subsMu.RLock()
	defer e.subsMu.RUnlock()
	for _, sub := range e.subs {
		sub.sendQueue(QueueChange{Tracks: tracks})
	}
}

func (e *Engine) emitMode() {
	e.mu.RLock()
	shuffle, repeat := e.state.Shuffle, e.state.Repeat
	e.mu.RUnlock()

	e.subsMu.RLock()
	defer e.subsMu.RUnlock()
	for _, sub := range e.subs {
		sub.sendMode(ModeChange{Shuffle: shuffle, Repeat: repeat})
	}
}

func (e *Engine) emitProgress(progress float64) {
	e.subsMu.RLock()
	defer e.subsMu.RUnlock()
	for _, sub := range e.subs {
		sub.sendProgress(ProgressChange{Progress: progress})
	}
}
