package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/tunedeck/tunedeck/internal/domain"
	"github.com/tunedeck/tunedeck/internal/query"
)

func TestArtistProfileAlbums(t *testing.T) {
	artists := &mockArtistRepo{byID: map[string]domain.Artist{"a1": {ID: "a1", Name: "Ava"}}}
	albums := &mockAlbumRepo{list: []domain.Album{{ID: "al1", Title: "Amor"}}}
	uc := NewArtistUsecase(artists, albums, &mockTrackRepo{})

	artist, list, err := uc.Profile(context.Background(), "a1")
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if artist.Name != "Ava" || len(list) != 1 {
		t.Fatalf("unexpected profile %+v %+v", artist, list)
	}
	spec := albums.specs[0]
	if len(spec.Equals) != 1 || spec.Equals[0] != (query.Equal{Field: query.FieldAlbumArtist, Value: "a1"}) {
		t.Fatalf("albums not scoped to artist: %+v", spec)
	}

	_, _, err = uc.Profile(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(albums.specs) != 1 {
		t.Fatalf("albums must not be queried for a missing artist")
	}
}

func TestAlbumTracksEmptyIsNotAnError(t *testing.T) {
	tracks := &mockTrackRepo{}
	uc := NewArtistUsecase(&mockArtistRepo{}, &mockAlbumRepo{}, tracks)

	list, err := uc.AlbumTracks(context.Background(), "al1", url.Values{"track": {"  "}})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list")
	}
	if len(tracks.specs[0].Search) != 0 {
		t.Fatalf("blank track parameter must not add a predicate")
	}
}

func TestGenresAreCached(t *testing.T) {
	genres := &mockGenreRepo{list: []domain.Genre{{ID: "g1", Name: domain.GenrePop}}}
	uc := NewDiscoverUsecase(genres, &mockTrackRepo{}, newMockCache(), time.Minute)

	for i := 0; i < 3; i++ {
		list, err := uc.Genres(context.Background())
		if err != nil {
			t.Fatalf("genres failed: %v", err)
		}
		if len(list) != 1 || list[0].Name != domain.GenrePop {
			t.Fatalf("unexpected genres %+v", list)
		}
	}
	if genres.calls != 1 {
		t.Fatalf("expected one repository call, got %d", genres.calls)
	}
}

func TestGenreTracksScopedToGenre(t *testing.T) {
	tracks := &mockTrackRepo{}
	uc := NewDiscoverUsecase(&mockGenreRepo{}, tracks, newMockCache(), time.Minute)

	if _, err := uc.GenreTracks(context.Background(), "g1", url.Values{"track": {"Al"}}); err != nil {
		t.Fatalf("genre tracks failed: %v", err)
	}
	spec := tracks.specs[0]
	if len(spec.Equals) != 1 || spec.Equals[0].Field != query.FieldTrackGenre || spec.Equals[0].Value != "g1" {
		t.Fatalf("tracks not scoped to genre: %+v", spec)
	}
	if len(spec.Search) == 0 || spec.Search[0].Pattern != "Al" {
		t.Fatalf("expected track search predicate: %+v", spec)
	}
}

func TestLyricsLookup(t *testing.T) {
	tracks := &mockTrackRepo{
		byID: map[string]domain.Track{
			"t1": {ID: "t1", Title: "Alpha", Lyrics: ptr("la la"), Artist: &domain.Artist{Name: "Ava"}},
			"t2": {ID: "t2", Title: "Beta"},
		},
		list: []domain.Track{{ID: "t1", Title: "Alpha", Lyrics: ptr("la la"), Artist: &domain.Artist{Name: "Ava"}}},
	}
	uc := NewLyricsUsecase(tracks, newMockCache(), time.Minute)
	ctx := context.Background()

	lyrics, err := uc.Lookup(ctx, url.Values{"id": {"t1"}})
	if err != nil {
		t.Fatalf("lookup by id failed: %v", err)
	}
	if lyrics.Text != "la la" || lyrics.Title != "Alpha" || lyrics.Artist == nil || *lyrics.Artist != "Ava" {
		t.Fatalf("unexpected lyrics %+v", lyrics)
	}

	if _, err := uc.Lookup(ctx, url.Values{"id": {"missing"}}); !errors.Is(err, ErrLyricsNotFound) {
		t.Fatalf("expected lyrics not found, got %v", err)
	}
	if _, err := uc.Lookup(ctx, url.Values{"id": {"t2"}}); !errors.Is(err, ErrLyricsNotFound) {
		t.Fatalf("track without lyrics must be not found, got %v", err)
	}
	if _, err := uc.Lookup(ctx, url.Values{"title": {"  "}}); !errors.Is(err, ErrMissingTitle) {
		t.Fatalf("expected missing title, got %v", err)
	}

	if _, err := uc.Lookup(ctx, url.Values{"title": {"alp"}, "artist": {"av"}}); err != nil {
		t.Fatalf("lookup by title failed: %v", err)
	}
	if _, err := uc.Lookup(ctx, url.Values{"title": {"ALP"}, "artist": {"AV"}}); err != nil {
		t.Fatalf("cached lookup failed: %v", err)
	}
	if len(tracks.specs) != 1 {
		t.Fatalf("expected second title lookup to hit the cache, got %d queries", len(tracks.specs))
	}
	if tracks.specs[0].Limit != 1 || len(tracks.specs[0].Search) != 2 {
		t.Fatalf("unexpected lyrics spec %+v", tracks.specs[0])
	}
}

func TestLyricsIDLookupIsCaseSensitive(t *testing.T) {
	tracks := &mockTrackRepo{
		byID: map[string]domain.Track{
			"ctrackalpha1": {ID: "ctrackalpha1", Title: "Alpha", Lyrics: ptr("la la")},
		},
	}
	uc := NewLyricsUsecase(tracks, newMockCache(), time.Minute)
	ctx := context.Background()

	if _, err := uc.Lookup(ctx, url.Values{"id": {"ctrackalpha1"}}); err != nil {
		t.Fatalf("lookup by id failed: %v", err)
	}
	if _, err := uc.Lookup(ctx, url.Values{"id": {"CTRACKALPHA1"}}); !errors.Is(err, ErrLyricsNotFound) {
		t.Fatalf("an id matching no track must be not found, got %v", err)
	}
}

func TestCacheKey(t *testing.T) {
	a := cacheKey("lyrics:search", "alpha", "ava")
	if a != cacheKey("lyrics:search", "alpha", "ava") {
		t.Fatalf("cache key is not stable")
	}
	if a == cacheKey("lyrics:search", "Alpha", "Ava") {
		t.Fatalf("cache key must not fold case")
	}
	if a == cacheKey("lyrics:search", "alph", "aava") {
		t.Fatalf("part boundaries must be part of the key")
	}
	if !strings.HasPrefix(a, "lyrics:search:") || len(a) != len("lyrics:search:")+32 {
		t.Fatalf("unexpected key shape %q", a)
	}
}

func TestSearchFansOut(t *testing.T) {
	artists := &mockArtistRepo{list: []domain.Artist{{Name: "Ava"}}}
	albums := &mockAlbumRepo{list: []domain.Album{{Title: "Amor"}}}
	tracks := &mockTrackRepo{list: []domain.Track{{Title: "Alpha"}}}
	uc := NewSearchUsecase(artists, albums, tracks)

	result, err := uc.Search(context.Background(), url.Values{"q": {"a"}})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Artists) != 1 || len(result.Albums) != 1 || len(result.Tracks) != 1 {
		t.Fatalf("unexpected result %+v", result)
	}
	if artists.listSpec[0].Limit != domain.SearchArtistLimit ||
		albums.specs[0].Limit != domain.SearchAlbumLimit ||
		tracks.specs[0].Limit != domain.SearchTrackLimit {
		t.Fatalf("search caps not applied")
	}
}

func TestSearchBlankQuery(t *testing.T) {
	artists := &mockArtistRepo{}
	albums := &mockAlbumRepo{}
	tracks := &mockTrackRepo{}
	uc := NewSearchUsecase(artists, albums, tracks)

	result, err := uc.Search(context.Background(), url.Values{"q": {"   "}})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if result.Artists == nil || result.Albums == nil || result.Tracks == nil {
		t.Fatalf("expected empty, non-nil sequences")
	}
	if len(artists.listSpec)+len(albums.specs)+len(tracks.specs) != 0 {
		t.Fatalf("blank query must not reach the repositories")
	}
}

func TestSearchPropagatesFailure(t *testing.T) {
	boom := errors.New("boom")
	uc := NewSearchUsecase(&mockArtistRepo{}, &mockAlbumRepo{}, &mockTrackRepo{err: boom})

	if _, err := uc.Search(context.Background(), url.Values{"q": {"a"}}); !errors.Is(err, boom) {
		t.Fatalf("expected track failure, got %v", err)
	}
}
