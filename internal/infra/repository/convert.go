package repository

import (
	"github.com/tunedeck/tunedeck/internal/domain"
	"github.com/tunedeck/tunedeck/internal/infra/database/models"
)

func artistToDomain(m models.Artist) domain.Artist {
	a := domain.Artist{
		ID:              m.AID,
		Email:           m.Email,
		PasswordHash:    m.Password,
		Name:            m.Name,
		Gender:          domain.Gender(m.Gender),
		Type:            domain.AccountType(m.Type),
		Bio:             m.Bio,
		ProfileImageURL: m.ProfileImageURL,
	}
	for _, album := range m.Albums {
		a.Albums = append(a.Albums, albumToDomain(album))
	}
	for _, track := range m.Tracks {
		a.Tracks = append(a.Tracks, trackToDomain(track))
	}
	return a
}

func albumToDomain(m models.Album) domain.Album {
	return domain.Album{
		ID:       m.AAID,
		Title:    m.Title,
		Cover:    m.Cover,
		ArtistID: m.ArtistID,
	}
}

func genreToDomain(m models.Genre) domain.Genre {
	return domain.Genre{
		ID:       m.GID,
		Name:     domain.GenreName(m.Genre),
		CoverURL: m.CoverURL,
	}
}

func trackToDomain(m models.Track) domain.Track {
	t := domain.Track{
		ID:                 m.TID,
		Title:              m.Title,
		Duration:           m.Duration,
		Lyrics:             m.Lyrics,
		HostedDirectoryURL: m.HostedDirectoryURL,
		ArtistID:           m.ArtistID,
		GenreID:            m.GenreID,
		AlbumID:            m.AlbumID,
	}
	if m.Artist != nil {
		artist := artistToDomain(*m.Artist)
		t.Artist = &artist
	}
	if m.Genre != nil {
		genre := genreToDomain(*m.Genre)
		t.Genre = &genre
	}
	if m.Album != nil {
		album := albumToDomain(*m.Album)
		t.Album = &album
	}
	return t
}

func playlistToDomain(m models.Playlist) domain.Playlist {
	p := domain.Playlist{
		ID:        m.PID,
		Title:     m.Title,
		CreatorID: m.CreatorID,
		Tracks:    make([]domain.Track, 0, len(m.Tracks)),
	}
	for _, track := range m.Tracks {
		p.Tracks = append(p.Tracks, trackToDomain(track))
	}
	return p
}

func mapSlice[M any, D any](in []M, f func(M) D) []D {
	out := make([]D, 0, len(in))
	for _, m := range in {
		out = append(out, f(m))
	}
	return out
}
