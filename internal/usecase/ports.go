package usecase

import (
	"context"
	"time"

	"github.com/tunedeck/tunedeck/internal/domain"
	"github.com/tunedeck/tunedeck/internal/query"
)

// ArtistRepository defines persistence/lookup for artist accounts.
type ArtistRepository interface {
	List(ctx context.Context, spec query.FilterSpec) ([]domain.Artist, error)
	Get(ctx context.Context, id string) (domain.Artist, error)
	GetProfile(ctx context.Context, id string) (domain.Artist, error)
	FindByEmail(ctx context.Context, email string) (domain.Artist, error)
	Create(ctx context.Context, artist domain.Artist) (domain.Artist, error)
}

// AlbumRepository defines persistence/lookup for albums.
type AlbumRepository interface {
	List(ctx context.Context, spec query.FilterSpec) ([]domain.Album, error)
}

// GenreRepository defines persistence/lookup for genres.
type GenreRepository interface {
	List(ctx context.Context, spec query.FilterSpec) ([]domain.Genre, error)
}

// TrackRepository defines persistence/lookup for tracks. Listed tracks carry
// their artist, genre and album.
type TrackRepository interface {
	List(ctx context.Context, spec query.FilterSpec) ([]domain.Track, error)
	Get(ctx context.Context, id string) (domain.Track, error)
}

// PlaylistRepository defines persistence for playlists. Update applies the
// rename and the membership reset atomically.
type PlaylistRepository interface {
	List(ctx context.Context, spec query.FilterSpec) ([]domain.Playlist, error)
	Get(ctx context.Context, id string) (domain.Playlist, error)
	Create(ctx context.Context, playlist domain.Playlist, trackIDs []string) (domain.Playlist, error)
	Update(ctx context.Context, id string, title *string, trackIDs *[]string) (domain.Playlist, error)
	Delete(ctx context.Context, id string) error
}

// CatalogRepository writes a batch of catalog records in one transaction.
type CatalogRepository interface {
	Import(ctx context.Context, genres []domain.Genre, albums []domain.Album, tracks []domain.Track) error
}

// Cache keeps JSON-encodable read results.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// EventPublisher announces committed playlist mutations.
type EventPublisher interface {
	PublishPlaylistEvent(ctx context.Context, event domain.PlaylistEvent) error
}

// TokenIssuer signs access tokens for authenticated accounts.
type TokenIssuer interface {
	Issue(name, userID string) (string, error)
}
