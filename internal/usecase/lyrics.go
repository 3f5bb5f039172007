package usecase

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/tunedeck/tunedeck/internal/domain"
	"github.com/tunedeck/tunedeck/internal/query"
)

var (
	ErrLyricsNotFound = domain.NotFoundError{Resource: "Lyrics", Message: "Lyrics not found"}
	ErrMissingTitle   = errors.New("Missing title parameter")
)

type LyricsUsecase struct {
	tracks   TrackRepository
	cache    Cache
	cacheTTL time.Duration
}

func NewLyricsUsecase(tracks TrackRepository, cache Cache, cacheTTL time.Duration) *LyricsUsecase {
	return &LyricsUsecase{
		tracks:   tracks,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Lookup finds lyrics by track id, or else by the first track (by title)
// whose title, and artist name when given, contain the parameters.
// A track without lyrics counts as not found.
func (uc *LyricsUsecase) Lookup(ctx context.Context, params url.Values) (domain.Lyrics, error) {
	id := strings.TrimSpace(params.Get("id"))
	title := strings.TrimSpace(params.Get("title"))
	artist := strings.TrimSpace(params.Get("artist"))

	var key string
	if id != "" {
		key = cacheKey("lyrics:id", id)
	} else {
		if title == "" {
			return domain.Lyrics{}, ErrMissingTitle
		}
		// title and artist match case-insensitively, ids do not
		key = cacheKey("lyrics:search", strings.ToLower(title), strings.ToLower(artist))
	}

	var cached domain.Lyrics
	if hit, err := uc.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	track, err := uc.find(ctx, id, params)
	if err != nil {
		return domain.Lyrics{}, err
	}
	if track.Lyrics == nil || *track.Lyrics == "" {
		return domain.Lyrics{}, ErrLyricsNotFound
	}

	lyrics := domain.Lyrics{Text: *track.Lyrics, Title: track.Title}
	if track.Artist != nil {
		lyrics.Artist = &track.Artist.Name
	}

	if err := uc.cache.Set(ctx, key, lyrics, uc.cacheTTL); err != nil {
		slog.WarnContext(ctx, "lyrics cache write failed", slog.String("error", err.Error()), slog.String("module", "lyrics"))
	}
	return lyrics, nil
}

func (uc *LyricsUsecase) find(ctx context.Context, id string, params url.Values) (domain.Track, error) {
	if id != "" {
		track, err := uc.tracks.Get(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Track{}, ErrLyricsNotFound
		}
		return track, err
	}

	tracks, err := uc.tracks.List(ctx, query.Build(query.KindLyrics, params))
	if err != nil {
		return domain.Track{}, err
	}
	if len(tracks) == 0 {
		return domain.Track{}, ErrLyricsNotFound
	}
	return tracks[0], nil
}
