package usecase

import (
	"context"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/tunedeck/tunedeck/internal/domain"
	"github.com/tunedeck/tunedeck/internal/query"
)

type SearchUsecase struct {
	artists ArtistRepository
	albums  AlbumRepository
	tracks  TrackRepository
}

func NewSearchUsecase(artists ArtistRepository, albums AlbumRepository, tracks TrackRepository) *SearchUsecase {
	return &SearchUsecase{
		artists: artists,
		albums:  albums,
		tracks:  tracks,
	}
}

// Search runs the artist, album and track queries concurrently. A blank q
// returns three empty sequences without touching the repositories.
func (uc *SearchUsecase) Search(ctx context.Context, params url.Values) (domain.SearchResult, error) {
	result := domain.SearchResult{
		Artists: []domain.Artist{},
		Albums:  []domain.Album{},
		Tracks:  []domain.Track{},
	}

	plan, ok := query.BuildSearch(params)
	if !ok {
		return result, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		artists, err := uc.artists.List(gctx, plan.Artists)
		if err != nil {
			return err
		}
		result.Artists = artists
		return nil
	})
	g.Go(func() error {
		albums, err := uc.albums.List(gctx, plan.Albums)
		if err != nil {
			return err
		}
		result.Albums = albums
		return nil
	})
	g.Go(func() error {
		tracks, err := uc.tracks.List(gctx, plan.Tracks)
		if err != nil {
			return err
		}
		result.Tracks = tracks
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.SearchResult{}, err
	}
	return result, nil
}
