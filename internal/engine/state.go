package engine

import "github.com/tonearm/tonearm/internal/catalog"

// State is the authoritative "now playing" snapshot. It is updated
// optimistically at command-issue time and drives UI rendering even
// before the device confirms; timeUpdate and ended events reconcile
// it with the device afterwards.
//
// Invariants:
//   - Progress is meaningful only when CurrentTrack != nil.
//   - Muted is true whenever Volume == 0; setting a positive volume
//     while muted unmutes, setting exactly 0 mutes.
type State struct {
	CurrentTrack   *catalog.Track
	IsPlaying      bool
	Progress       float64 // percentage of duration elapsed, 0..100
	Volume         float64 // 0..1
	Muted          bool
	Shuffle        bool
	Repeat         bool
	FullPlayerOpen bool
}

// defaultState is the cold-start state before hydration: at rest,
// full volume, all modes off.
func defaultState() State {
	return State{Volume: 1}
}

// effectiveVolume is what is forwarded to the device.
func (s State) effectiveVolume() float64 {
	if s.Muted {
		return 0
	}
	return s.Volume
}

// snapshot returns a copy safe to hand to subscribers; the current
// track pointer is duplicated so callers cannot mutate engine state.
func (s State) snapshot() State {
	if s.CurrentTrack != nil {
		t := *s.CurrentTrack
		s.CurrentTrack = &t
	}
	return s
}
