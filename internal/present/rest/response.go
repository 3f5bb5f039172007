package rest

import (
	"github.com/tunedeck/tunedeck/internal/domain"
)

type artistRef struct {
	AID  string `json:"aid,omitempty"`
	Name string `json:"name"`
}

type genreRef struct {
	Genre domain.GenreName `json:"genre"`
}

type albumRef struct {
	AAID       string  `json:"aaid"`
	AlbumCover *string `json:"albumCover"`
}

type trackView struct {
	TID                string     `json:"tid"`
	Title              string     `json:"title"`
	Duration           int        `json:"duration"`
	Lyrics             *string    `json:"lyrics"`
	HostedDirectoryURL string     `json:"hostedDirectoryUrl"`
	Artist             *artistRef `json:"artist,omitempty"`
	Genre              *genreRef  `json:"genre,omitempty"`
	Album              *albumRef  `json:"album,omitempty"`
}

type artistSummary struct {
	AID             string  `json:"aid"`
	Name            string  `json:"name"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

type artistDetail struct {
	Name            string  `json:"name"`
	ProfileImageURL *string `json:"profileImageUrl"`
	Bio             *string `json:"bio"`
}

type albumView struct {
	AAID       string  `json:"aaid"`
	Title      string  `json:"title"`
	AlbumCover *string `json:"albumCover"`
	ArtistID   string  `json:"artistid,omitempty"`
}

type genreView struct {
	GID           string           `json:"gid"`
	Genre         domain.GenreName `json:"genre"`
	GenreCoverURL *string          `json:"genreCoverUrl"`
}

type profileTrack struct {
	TID                string `json:"tid"`
	Title              string `json:"title"`
	HostedDirectoryURL string `json:"hostedDirectoryUrl"`
}

type profileView struct {
	AID             string             `json:"aid"`
	Email           string             `json:"email"`
	Name            string             `json:"name"`
	Gender          domain.Gender      `json:"gender"`
	Type            domain.AccountType `json:"type"`
	Bio             *string            `json:"bio"`
	ProfileImageURL *string            `json:"profileImageUrl"`
	Albums          []albumView        `json:"albums"`
	Tracks          []profileTrack     `json:"tracks"`
}

type playlistView struct {
	PID           string      `json:"pid"`
	PlaylistTitle string      `json:"playlistTitle"`
	CreatorID     string      `json:"creatorid"`
	Tracks        []trackView `json:"tracks"`
	TrackCount    int         `json:"trackCount"`
}

type lyricsView struct {
	Lyrics string  `json:"lyrics"`
	Title  string  `json:"title"`
	Artist *string `json:"artist"`
}

// lyricsMiss is the 200 body of a failed lyrics lookup.
type lyricsMiss struct {
	Lyrics *string `json:"lyrics"`
	Error  string  `json:"error"`
}

func mapViews[D any, V any](in []D, f func(D) V) []V {
	out := make([]V, 0, len(in))
	for _, d := range in {
		out = append(out, f(d))
	}
	return out
}

func toTrackView(t domain.Track) trackView {
	v := trackView{
		TID:                t.ID,
		Title:              t.Title,
		Duration:           t.Duration,
		Lyrics:             t.Lyrics,
		HostedDirectoryURL: t.HostedDirectoryURL,
	}
	if t.Artist != nil {
		v.Artist = &artistRef{AID: t.Artist.ID, Name: t.Artist.Name}
	}
	if t.Genre != nil {
		v.Genre = &genreRef{Genre: t.Genre.Name}
	}
	if t.Album != nil {
		v.Album = &albumRef{AAID: t.Album.ID, AlbumCover: t.Album.Cover}
	}
	return v
}

func toArtistSummary(a domain.Artist) artistSummary {
	return artistSummary{AID: a.ID, Name: a.Name, ProfileImageURL: a.ProfileImageURL}
}

func toAlbumView(a domain.Album) albumView {
	return albumView{AAID: a.ID, Title: a.Title, AlbumCover: a.Cover, ArtistID: a.ArtistID}
}

func toGenreView(g domain.Genre) genreView {
	return genreView{GID: g.ID, Genre: g.Name, GenreCoverURL: g.CoverURL}
}

func toPlaylistView(p domain.Playlist) playlistView {
	return playlistView{
		PID:           p.ID,
		PlaylistTitle: p.Title,
		CreatorID:     p.CreatorID,
		Tracks:        mapViews(p.Tracks, toTrackView),
		TrackCount:    len(p.Tracks),
	}
}

func toProfileView(a domain.Artist) profileView {
	return profileView{
		AID:             a.ID,
		Email:           a.Email,
		Name:            a.Name,
		Gender:          a.Gender,
		Type:            a.Type,
		Bio:             a.Bio,
		ProfileImageURL: a.ProfileImageURL,
		Albums: mapViews(a.Albums, func(al domain.Album) albumView {
			return albumView{AAID: al.ID, Title: al.Title, AlbumCover: al.Cover}
		}),
		Tracks: mapViews(a.Tracks, func(t domain.Track) profileTrack {
			return profileTrack{TID: t.ID, Title: t.Title, HostedDirectoryURL: t.HostedDirectoryURL}
		}),
	}
}
