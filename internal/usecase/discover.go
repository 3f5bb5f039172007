package usecase

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/tunedeck/tunedeck/internal/domain"
	"github.com/tunedeck/tunedeck/internal/query"
)

type DiscoverUsecase struct {
	genres   GenreRepository
	tracks   TrackRepository
	cache    Cache
	cacheTTL time.Duration
}

func NewDiscoverUsecase(genres GenreRepository, tracks TrackRepository, cache Cache, cacheTTL time.Duration) *DiscoverUsecase {
	return &DiscoverUsecase{
		genres:   genres,
		tracks:   tracks,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Genres lists every genre ordered by name. The list is served from cache
// when present.
func (uc *DiscoverUsecase) Genres(ctx context.Context) ([]domain.Genre, error) {
	var cached []domain.Genre
	hit, err := uc.cache.Get(ctx, genresCacheKey, &cached)
	if err != nil {
		slog.WarnContext(ctx, "genre cache read failed", slog.String("error", err.Error()), slog.String("module", "discover"))
	}
	if hit && err == nil {
		return cached, nil
	}

	genres, err := uc.genres.List(ctx, query.Build(query.KindGenres, nil))
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, genresCacheKey, genres, uc.cacheTTL); err != nil {
		slog.WarnContext(ctx, "genre cache write failed", slog.String("error", err.Error()), slog.String("module", "discover"))
	}
	return genres, nil
}

func (uc *DiscoverUsecase) GenreTracks(ctx context.Context, genreID string, params url.Values) ([]domain.Track, error) {
	spec := query.Build(query.KindGenreTracks, params).Where(query.FieldTrackGenre, genreID)
	return uc.tracks.List(ctx, spec)
}
