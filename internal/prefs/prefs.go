// Package prefs holds the user's membership sets: liked tracks and
// followed users. Both only mutate through toggles.
package prefs

import "sort"

// Sets holds the two de-duplicated membership sets.
type Sets struct {
	liked    map[string]struct{}
	followed map[string]struct{}
}

// New creates empty sets.
func New() *Sets {
	return &Sets{
		liked:    make(map[string]struct{}),
		followed: make(map[string]struct{}),
	}
}

// ToggleLike adds the track ID if absent, removes it if present.
// Returns the resulting membership.
func (s *Sets) ToggleLike(trackID string) bool {
	return toggle(s.liked, trackID)
}

// IsLiked reports membership in the liked set.
func (s *Sets) IsLiked(trackID string) bool {
	_, ok := s.liked[trackID]
	return ok
}

// LikedIDs returns the liked track IDs in sorted order.
func (s *Sets) LikedIDs() []string {
	return sortedKeys(s.liked)
}

// ToggleFollow adds the user ID if absent, removes it if present.
// Returns the resulting membership.
func (s *Sets) ToggleFollow(userID string) bool {
	return toggle(s.followed, userID)
}

// IsFollowed reports membership in the followed set.
func (s *Sets) IsFollowed(userID string) bool {
	_, ok := s.followed[userID]
	return ok
}

// FollowedIDs returns the followed user IDs in sorted order.
func (s *Sets) FollowedIDs() []string {
	return sortedKeys(s.followed)
}

// LoadLiked replaces the liked set. Used when hydrating.
func (s *Sets) LoadLiked(ids []string) {
	s.liked = fromSlice(ids)
}

// LoadFollowed replaces the followed set. Used when hydrating.
func (s *Sets) LoadFollowed(ids []string) {
	s.followed = fromSlice(ids)
}

func toggle(set map[string]struct{}, id string) bool {
	if _, ok := set[id]; ok {
		delete(set, id)
		return false
	}
	set[id] = struct{}{}
	return true
}

func fromSlice(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
