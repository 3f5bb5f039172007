package domain

import "time"

// Playlist is a user-curated, ordered-by-title set of tracks.
type Playlist struct {
	ID        string
	Title     string
	CreatorID string
	Tracks    []Track
}

// OwnedBy reports whether userID created the playlist.
func (p Playlist) OwnedBy(userID string) bool {
	return p.CreatorID != "" && p.CreatorID == userID
}

// PlaylistEventType names a playlist mutation.
type PlaylistEventType string

const (
	PlaylistCreated PlaylistEventType = "created"
	PlaylistUpdated PlaylistEventType = "updated"
	PlaylistDeleted PlaylistEventType = "deleted"
)

// PlaylistEvent is published after a playlist mutation commits.
type PlaylistEvent struct {
	Type       PlaylistEventType `json:"type"`
	PlaylistID string            `json:"playlistId"`
	CreatorID  string            `json:"creatorId"`
	TrackCount int               `json:"trackCount"`
	At         time.Time         `json:"at"`
}
