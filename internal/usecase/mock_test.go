package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/tunedeck/tunedeck/internal/domain"
	"github.com/tunedeck/tunedeck/internal/query"
)

type mockArtistRepo struct {
	byEmail  map[string]domain.Artist
	byID     map[string]domain.Artist
	created  []domain.Artist
	listSpec []query.FilterSpec
	list     []domain.Artist
	err      error
	mu       sync.Mutex
}

func (m *mockArtistRepo) List(ctx context.Context, spec query.FilterSpec) ([]domain.Artist, error) {
	m.mu.Lock()
	m.listSpec = append(m.listSpec, spec)
	m.mu.Unlock()
	return m.list, m.err
}
func (m *mockArtistRepo) Get(ctx context.Context, id string) (domain.Artist, error) {
	a, ok := m.byID[id]
	if !ok {
		return domain.Artist{}, domain.NotFoundError{Resource: "Artist"}
	}
	return a, nil
}
func (m *mockArtistRepo) GetProfile(ctx context.Context, id string) (domain.Artist, error) {
	a, ok := m.byID[id]
	if !ok {
		return domain.Artist{}, domain.NotFoundError{Resource: "User"}
	}
	return a, nil
}
func (m *mockArtistRepo) FindByEmail(ctx context.Context, email string) (domain.Artist, error) {
	if m.err != nil {
		return domain.Artist{}, m.err
	}
	a, ok := m.byEmail[email]
	if !ok {
		return domain.Artist{}, domain.NotFoundError{Resource: "User"}
	}
	return a, nil
}
func (m *mockArtistRepo) Create(ctx context.Context, a domain.Artist) (domain.Artist, error) {
	a.ID = "cnewartist0000000000000"
	m.created = append(m.created, a)
	return a, nil
}

type mockAlbumRepo struct {
	specs []query.FilterSpec
	list  []domain.Album
	mu    sync.Mutex
}

func (m *mockAlbumRepo) List(ctx context.Context, spec query.FilterSpec) ([]domain.Album, error) {
	m.mu.Lock()
	m.specs = append(m.specs, spec)
	m.mu.Unlock()
	return m.list, nil
}

type mockGenreRepo struct {
	calls int
	list  []domain.Genre
}

func (m *mockGenreRepo) List(ctx context.Context, spec query.FilterSpec) ([]domain.Genre, error) {
	m.calls++
	return m.list, nil
}

type mockTrackRepo struct {
	specs []query.FilterSpec
	list  []domain.Track
	byID  map[string]domain.Track
	err   error
	mu    sync.Mutex
}

func (m *mockTrackRepo) List(ctx context.Context, spec query.FilterSpec) ([]domain.Track, error) {
	m.mu.Lock()
	m.specs = append(m.specs, spec)
	m.mu.Unlock()
	return m.list, m.err
}
func (m *mockTrackRepo) Get(ctx context.Context, id string) (domain.Track, error) {
	t, ok := m.byID[id]
	if !ok {
		return domain.Track{}, domain.NotFoundError{Resource: "Track"}
	}
	return t, nil
}

type mockPlaylistRepo struct {
	playlists map[string]domain.Playlist
	updated   bool
	deleted   bool
	spec      query.FilterSpec
}

func (m *mockPlaylistRepo) List(ctx context.Context, spec query.FilterSpec) ([]domain.Playlist, error) {
	m.spec = spec
	return nil, nil
}
func (m *mockPlaylistRepo) Get(ctx context.Context, id string) (domain.Playlist, error) {
	p, ok := m.playlists[id]
	if !ok {
		return domain.Playlist{}, domain.NotFoundError{Resource: "Playlist"}
	}
	return p, nil
}
func (m *mockPlaylistRepo) Create(ctx context.Context, p domain.Playlist, trackIDs []string) (domain.Playlist, error) {
	p.ID = "cnewplaylist00000000000"
	for _, id := range trackIDs {
		p.Tracks = append(p.Tracks, domain.Track{ID: id})
	}
	m.playlists[p.ID] = p
	return p, nil
}
func (m *mockPlaylistRepo) Update(ctx context.Context, id string, title *string, trackIDs *[]string) (domain.Playlist, error) {
	m.updated = true
	p := m.playlists[id]
	if title != nil {
		p.Title = *title
	}
	return p, nil
}
func (m *mockPlaylistRepo) Delete(ctx context.Context, id string) error {
	m.deleted = true
	delete(m.playlists, id)
	return nil
}

type mockCatalogRepo struct {
	genres []domain.Genre
	albums []domain.Album
	tracks []domain.Track
	calls  int
}

func (m *mockCatalogRepo) Import(ctx context.Context, genres []domain.Genre, albums []domain.Album, tracks []domain.Track) error {
	m.calls++
	m.genres, m.albums, m.tracks = genres, albums, tracks
	return nil
}

type mockCache struct {
	items map[string][]byte
}

func newMockCache() *mockCache {
	return &mockCache{items: map[string][]byte{}}
}

func (m *mockCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	data, ok := m.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dst)
}
func (m *mockCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.items[key] = data
	return nil
}
func (m *mockCache) Delete(ctx context.Context, key string) error {
	delete(m.items, key)
	return nil
}

type mockPublisher struct {
	events []domain.PlaylistEvent
}

func (m *mockPublisher) PublishPlaylistEvent(ctx context.Context, event domain.PlaylistEvent) error {
	m.events = append(m.events, event)
	return nil
}

type mockIssuer struct{}

func (mockIssuer) Issue(name, userID string) (string, error) {
	return "token-for-" + userID, nil
}

func ptr[T any](v T) *T { return &v }
