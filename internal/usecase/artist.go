package usecase

import (
	"context"
	"net/url"

	"github.com/tunedeck/tunedeck/internal/domain"
	"github.com/tunedeck/tunedeck/internal/query"
)

type ArtistUsecase struct {
	artists ArtistRepository
	albums  AlbumRepository
	tracks  TrackRepository
}

func NewArtistUsecase(artists ArtistRepository, albums AlbumRepository, tracks TrackRepository) *ArtistUsecase {
	return &ArtistUsecase{
		artists: artists,
		albums:  albums,
		tracks:  tracks,
	}
}

func (uc *ArtistUsecase) List(ctx context.Context, params url.Values) ([]domain.Artist, error) {
	return uc.artists.List(ctx, query.Build(query.KindArtists, params))
}

// Profile returns the artist and its albums ordered by title.
func (uc *ArtistUsecase) Profile(ctx context.Context, artistID string) (domain.Artist, []domain.Album, error) {
	artist, err := uc.artists.Get(ctx, artistID)
	if err != nil {
		return domain.Artist{}, nil, err
	}

	albums, err := uc.albums.List(ctx, query.Build(query.KindAlbums, nil).Where(query.FieldAlbumArtist, artistID))
	if err != nil {
		return domain.Artist{}, nil, err
	}
	return artist, albums, nil
}

// AlbumTracks lists the tracks of an album. An album without (matching)
// tracks yields an empty list. Tracks are selected by album only.
func (uc *ArtistUsecase) AlbumTracks(ctx context.Context, albumID string, params url.Values) ([]domain.Track, error) {
	spec := query.Build(query.KindAlbumTracks, params).Where(query.FieldTrackAlbum, albumID)
	return uc.tracks.List(ctx, spec)
}
