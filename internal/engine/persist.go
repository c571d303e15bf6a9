package engine

import "github.com/tonearm/tonearm/internal/errmsg"

// Persistence is fire-and-forget: a failed write is logged and the
// in-memory state stays authoritative for the session.

func (e *Engine) persistPlayer() {
	e.mu.RLock()
	volume, muted := e.state.Volume, e.state.Muted
	shuffle, repeat := e.state.Shuffle, e.state.Repeat
	e.mu.RUnlock()

	if err := e.store.SavePlayerState(volume, muted, shuffle, repeat); err != nil {
		e.log.Warn().Msg(errmsg.Format(errmsg.OpStateSave, err))
	}
}

func (e *Engine) persistCurrent() {
	e.mu.RLock()
	t := e.state.CurrentTrack
	if t != nil {
		tc := *t
		t = &tc
	}
	e.mu.RUnlock()

	if err := e.store.SaveCurrentTrack(t); err != nil {
		e.log.Warn().Msg(errmsg.Format(errmsg.OpStateSave, err))
	}
}

func (e *Engine) persistQueue() {
	e.mu.RLock()
	tracks := e.queue.Tracks()
	e.mu.RUnlock()

	if err := e.store.SaveQueue(tracks); err != nil {
		e.log.Warn().Msg(errmsg.Format(errmsg.OpQueueSave, err))
	}
}

func (e *Engine) persistRecent() {
	e.mu.RLock()
	tracks := e.recent.Tracks()
	e.mu.RUnlock()

	if err := e.store.SaveRecent(tracks); err != nil {
		e.log.Warn().Msg(errmsg.Format(errmsg.OpStateSave, err))
	}
}

func (e *Engine) persistLiked() {
	e.mu.RLock()
	ids := e.sets.LikedIDs()
	e.mu.RUnlock()

	if err := e.store.SaveLiked(ids); err != nil {
		e.log.Warn().Msg(errmsg.Format(errmsg.OpLikeToggle, err))
	}
}

func (e *Engine) persistFollowed() {
	e.mu.RLock()
	ids := e.sets.FollowedIDs()
	e.mu.RUnlock()

	if err := e.store.SaveFollowed(ids); err != nil {
		e.log.Warn().Msg(errmsg.Format(errmsg.OpFollowToggle, err))
	}
}

func (e *Engine) persistPlaylists() {
	e.mu.RLock()
	lists := e.lists.All()
	e.mu.RUnlock()

	if err := e.store.SavePlaylists(lists); err != nil {
		e.log.Warn().Msg(errmsg.Format(errmsg.OpPlaylistSave, err))
	}
}
