package playlists

import (
	"math/rand"

	"github.com/tonearm/tonearm/internal/catalog"
)

// DefaultRecommendedSize is how many tracks an auto-generated
// playlist holds when the catalog is large enough.
const DefaultRecommendedSize = 8

// Recommender picks a pseudo-random catalog subset for generated
// playlists. An external recommendation source can replace it later.
type Recommender struct {
	curator string
	size    int
	rng     *rand.Rand
}

// NewRecommender creates a recommender attributing playlists to the
// given curator identity. A size <= 0 falls back to
// DefaultRecommendedSize.
func NewRecommender(curator string, size int, rng *rand.Rand) *Recommender {
	if size <= 0 {
		size = DefaultRecommendedSize
	}
	return &Recommender{curator: curator, size: size, rng: rng}
}

// CreateIn generates a playlist into s from a random catalog subset.
// Returns nil if the catalog is empty.
func (r *Recommender) CreateIn(s *Store, tracks []catalog.Track) *Playlist {
	if len(tracks) == 0 {
		return nil
	}
	n := min(r.size, len(tracks))
	perm := r.rng.Perm(len(tracks))

	p := s.Create("Recommended Mix", "Auto-generated from your catalog", nil)
	for _, idx := range perm[:n] {
		s.AddTrack(p.ID, tracks[idx])
	}
	// Reattribute to the curator identity; Create stamps the owner.
	if stored := s.find(p.ID); stored != nil {
		stored.Creator = r.curator
	}
	return s.Get(p.ID)
}
