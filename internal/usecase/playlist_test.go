package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/tunedeck/tunedeck/internal/domain"
	"github.com/tunedeck/tunedeck/internal/query"
	"github.com/tunedeck/tunedeck/internal/validation"
)

var (
	owner    = domain.Principal{UserID: "cowner00000000000000000", Name: "Ava"}
	stranger = domain.Principal{UserID: "cstranger00000000000000", Name: "Bob"}
)

func newPlaylistFixture() (*mockPlaylistRepo, *mockPublisher, *PlaylistUsecase) {
	repo := &mockPlaylistRepo{playlists: map[string]domain.Playlist{
		"p1": {ID: "p1", Title: "Mix", CreatorID: owner.UserID},
	}}
	events := &mockPublisher{}
	return repo, events, NewPlaylistUsecase(repo, events)
}

func TestPlaylistCreatePublishes(t *testing.T) {
	_, events, uc := newPlaylistFixture()

	p, err := uc.Create(context.Background(), owner, validation.PlaylistInput{Title: "Road", TrackIDs: []string{"t1", "t2"}})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if p.CreatorID != owner.UserID {
		t.Fatalf("expected creator %s got %s", owner.UserID, p.CreatorID)
	}
	if len(events.events) != 1 || events.events[0].Type != domain.PlaylistCreated || events.events[0].TrackCount != 2 {
		t.Fatalf("unexpected events %+v", events.events)
	}
}

func TestPlaylistListScopedToPrincipal(t *testing.T) {
	repo, _, uc := newPlaylistFixture()

	if _, err := uc.List(context.Background(), owner); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(repo.spec.Equals) != 1 || repo.spec.Equals[0] != (query.Equal{Field: query.FieldCreator, Value: owner.UserID}) {
		t.Fatalf("list not scoped to principal: %+v", repo.spec)
	}
}

func TestPlaylistOwnership(t *testing.T) {
	repo, events, uc := newPlaylistFixture()
	ctx := context.Background()

	_, err := uc.Update(ctx, stranger, "p1", validation.PlaylistUpdateInput{Title: ptr("Stolen")})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if err := uc.Delete(ctx, stranger, "p1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if repo.updated || repo.deleted || len(events.events) != 0 {
		t.Fatalf("forbidden mutation reached the repository")
	}

	// a missing playlist is reported before ownership
	if _, err := uc.Update(ctx, stranger, "nope", validation.PlaylistUpdateInput{}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := uc.Delete(ctx, stranger, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	p, err := uc.Update(ctx, owner, "p1", validation.PlaylistUpdateInput{Title: ptr("Renamed")})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if p.Title != "Renamed" {
		t.Fatalf("expected renamed playlist got %s", p.Title)
	}
	if err := uc.Delete(ctx, owner, "p1"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(events.events) != 2 || events.events[1].Type != domain.PlaylistDeleted {
		t.Fatalf("unexpected events %+v", events.events)
	}
}

func TestPlaylistWithoutPublisher(t *testing.T) {
	repo := &mockPlaylistRepo{playlists: map[string]domain.Playlist{}}
	uc := NewPlaylistUsecase(repo, nil)

	if _, err := uc.Create(context.Background(), owner, validation.PlaylistInput{Title: "Road", TrackIDs: []string{"t1"}}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
}
