package state

import "time"

// Track is an entry in the static playlist.
type Track struct {
	Title    string        `json:"title"`
	Artist   string        `json:"artist"`
	Duration time.Duration `json:"duration"`
}

// Playlist is the fixed set of tracks shown by the music widget.
var Playlist = []Track{
	{Title: "Morning Light", Artist: "Lumen Drift", Duration: 3*time.Minute + 42*time.Second},
	{Title: "Deep Focus", Artist: "Quiet Engines", Duration: 4*time.Minute + 15*time.Second},
	{Title: "City Rain", Artist: "Neon Harbor", Duration: 3*time.Minute + 5*time.Second},
	{Title: "Slow Orbit", Artist: "Paper Satellites", Duration: 5*time.Minute + 1*time.Second},
	{Title: "Evening Walk", Artist: "Lumen Drift", Duration: 2*time.Minute + 58*time.Second},
}

// Music is a snapshot of the music widget.
type Music struct {
	Playing bool  `json:"isPlaying"`
	Track   Track `json:"currentTrack"`
	Index   int   `json:"index"`
}

// Music returns a snapshot of the music widget.
func (a *Aggregator) Music() Music {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.music
}

// SetPlaying replaces the playback flag.
func (a *Aggregator) SetPlaying(playing bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.music.Playing = playing
}

// TogglePlay flips playback and returns the new state.
func (a *Aggregator) TogglePlay() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.music.Playing = !a.music.Playing
	return a.music.Playing
}

// SetCurrentTrack selects the playlist entry at index, wrapping around.
func (a *Aggregator) SetCurrentTrack(index int) Track {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.selectTrackLocked(index)
}

// NextTrack advances to the following track.
func (a *Aggregator) NextTrack() Track {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.selectTrackLocked(a.music.Index + 1)
}

// PrevTrack goes back to the previous track.
func (a *Aggregator) PrevTrack() Track {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.selectTrackLocked(a.music.Index - 1)
}

func (a *Aggregator) selectTrackLocked(index int) Track {
	n := len(Playlist)
	index = ((index % n) + n) % n
	a.music.Index = index
	a.music.Track = Playlist[index]
	return a.music.Track
}
