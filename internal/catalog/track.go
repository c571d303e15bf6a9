package catalog

// Track is an immutable catalog record. Tracks are created externally
// (catalog file or import) and are referenced by ID everywhere else in
// the engine; no component mutates one after creation.
type Track struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Artist    string  `json:"artist"`
	ArtistID  string  `json:"artistId"`
	AudioURI  string  `json:"audioUri"`
	Duration  int     `json:"duration"` // seconds
	Genre     string  `json:"genre,omitempty"`
	IsNFT     bool    `json:"isNft,omitempty"`
	Price     float64 `json:"price,omitempty"`
	BPM       int     `json:"bpm,omitempty"`
	Key       string  `json:"key,omitempty"`
	Bitrate   int     `json:"bitrate,omitempty"`
	PlayCount int     `json:"playCount,omitempty"`
	Likes     int     `json:"likes,omitempty"`
}
