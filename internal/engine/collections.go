package engine

import (
	"fmt"
	"time"

	"github.com/tonearm/tonearm/internal/catalog"
	"github.com/tonearm/tonearm/internal/notify"
	"github.com/tonearm/tonearm/internal/playlists"
)

// AddToQueue appends a track without touching playback. Re-adding a
// queued track is a silent no-op.
func (e *Engine) AddToQueue(t catalog.Track) {
	e.mu.Lock()
	changed := e.queue.Append(t)
	e.mu.Unlock()
	if !changed {
		return
	}

	e.persistQueue()
	e.emitQueue()
	e.notify(fmt.Sprintf("Added %q to queue", t.Title), notify.Success)
}

// PlayAll replaces the queue with the given tracks and starts the
// first one. An empty slice leaves everything untouched.
func (e *Engine) PlayAll(tracks []catalog.Track) {
	if len(tracks) == 0 {
		return
	}

	e.mu.Lock()
	e.queue.Replace(tracks)
	// Clear the current track so PlayTrack treats tracks[0] as a
	// fresh start even when it was already playing.
	e.state.CurrentTrack = nil
	e.mu.Unlock()

	e.persistQueue()
	e.emitQueue()
	e.PlayTrack(tracks[0])
}

// ClearRecentlyPlayed empties the recently played list.
func (e *Engine) ClearRecentlyPlayed() {
	e.mu.Lock()
	e.recent.Clear()
	e.mu.Unlock()

	e.persistRecent()
}

// ToggleLikeTrack flips a track's liked membership and reports the
// resulting state to the user.
func (e *Engine) ToggleLikeTrack(trackID string) {
	e.mu.Lock()
	liked := e.sets.ToggleLike(trackID)
	e.mu.Unlock()

	e.persistLiked()
	if liked {
		e.notify("Saved to liked tracks", notify.Success)
	} else {
		e.notify("Removed from liked tracks", notify.Info)
	}
}

// ToggleFollowUser flips an artist's followed membership.
func (e *Engine) ToggleFollowUser(userID string) {
	e.mu.Lock()
	followed := e.sets.ToggleFollow(userID)
	e.mu.Unlock()

	e.persistFollowed()
	if followed {
		e.notify("Following artist", notify.Success)
	} else {
		e.notify("Unfollowed artist", notify.Info)
	}
}

// CreateNewPlaylist creates a playlist owned by the configured user,
// optionally seeded with one track, and returns a copy of it.
func (e *Engine) CreateNewPlaylist(title, description string, initial *catalog.Track) playlists.Playlist {
	e.mu.Lock()
	p := e.lists.Create(title, description, initial)
	e.mu.Unlock()

	e.persistPlaylists()
	e.notify(fmt.Sprintf("Playlist %q created", p.Title), notify.Success)
	return p
}

// DeletePlaylist removes a playlist. Unknown IDs are no-ops.
func (e *Engine) DeletePlaylist(id string) {
	e.mu.Lock()
	deleted := e.lists.Delete(id)
	e.mu.Unlock()
	if !deleted {
		return
	}

	e.persistPlaylists()
	e.notify("Playlist deleted", notify.Info)
}

// UpdatePlaylist applies a partial metadata update to a playlist.
func (e *Engine) UpdatePlaylist(id string, meta playlists.Meta) {
	e.mu.Lock()
	changed := e.lists.UpdateMeta(id, meta)
	e.mu.Unlock()
	if !changed {
		return
	}

	e.persistPlaylists()
}

// AddTrackToPlaylist appends a track to a playlist. Adding a track
// that is already present changes nothing and says nothing.
func (e *Engine) AddTrackToPlaylist(id string, t catalog.Track) {
	e.mu.Lock()
	changed := e.lists.AddTrack(id, t)
	e.mu.Unlock()
	if !changed {
		return
	}

	e.persistPlaylists()
	e.notify(fmt.Sprintf("Added %q to playlist", t.Title), notify.Success)
}

// RemoveTrackFromPlaylist removes a track from a playlist.
func (e *Engine) RemoveTrackFromPlaylist(id, trackID string) {
	e.mu.Lock()
	changed := e.lists.RemoveTrack(id, trackID)
	e.mu.Unlock()
	if !changed {
		return
	}

	e.persistPlaylists()
	e.notify("Removed from playlist", notify.Info)
}

// ReorderTrackInPlaylist moves a track one position up or down,
// staying put at the edges.
func (e *Engine) ReorderTrackInPlaylist(id, trackID string, dir playlists.Direction) {
	e.mu.Lock()
	changed := e.lists.Reorder(id, trackID, dir)
	e.mu.Unlock()
	if !changed {
		return
	}

	e.persistPlaylists()
}

// CreateRecommendedPlaylist generates a curated playlist from a
// random sample of the catalog. With an empty catalog nothing is
// created.
func (e *Engine) CreateRecommendedPlaylist() *playlists.Playlist {
	e.mu.Lock()
	p := e.rec.CreateIn(e.lists, e.catalog)
	e.mu.Unlock()
	if p == nil {
		return nil
	}

	e.persistPlaylists()
	e.notify(fmt.Sprintf("Playlist %q is ready", p.Title), notify.Success)
	return p
}

// AddNotification pushes a user-facing message and returns its ID. A
// non-positive lifespan falls back to the configured default.
func (e *Engine) AddNotification(message string, severity notify.Severity, lifespan time.Duration) string {
	if lifespan <= 0 {
		lifespan = e.lifespan
	}
	return e.bus.Push(message, severity, lifespan)
}
