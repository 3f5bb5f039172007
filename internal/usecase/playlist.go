package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/tunedeck/tunedeck/internal/domain"
	"github.com/tunedeck/tunedeck/internal/query"
	"github.com/tunedeck/tunedeck/internal/validation"
)

type PlaylistUsecase struct {
	repo   PlaylistRepository
	events EventPublisher
	now    func() time.Time
}

// NewPlaylistUsecase builds the usecase. events may be nil, in which case
// mutations are not announced.
func NewPlaylistUsecase(repo PlaylistRepository, events EventPublisher) *PlaylistUsecase {
	return &PlaylistUsecase{
		repo:   repo,
		events: events,
		now:    time.Now,
	}
}

// List returns the principal's own playlists ordered by title.
func (uc *PlaylistUsecase) List(ctx context.Context, principal domain.Principal) ([]domain.Playlist, error) {
	spec := query.Build(query.KindPlaylists, nil).Where(query.FieldCreator, principal.UserID)
	return uc.repo.List(ctx, spec)
}

func (uc *PlaylistUsecase) Create(ctx context.Context, principal domain.Principal, input validation.PlaylistInput) (domain.Playlist, error) {
	playlist, err := uc.repo.Create(ctx, domain.Playlist{
		Title:     input.Title,
		CreatorID: principal.UserID,
	}, input.TrackIDs)
	if err != nil {
		return domain.Playlist{}, err
	}

	uc.publish(ctx, domain.PlaylistCreated, playlist)
	return playlist, nil
}

func (uc *PlaylistUsecase) Get(ctx context.Context, id string) (domain.Playlist, error) {
	return uc.repo.Get(ctx, id)
}

// Update renames the playlist and/or replaces its tracks. Only the creator may
// update; a missing playlist is reported before ownership.
func (uc *PlaylistUsecase) Update(ctx context.Context, principal domain.Principal, id string, input validation.PlaylistUpdateInput) (domain.Playlist, error) {
	if err := uc.authorize(ctx, principal, id); err != nil {
		return domain.Playlist{}, err
	}

	playlist, err := uc.repo.Update(ctx, id, input.Title, input.TrackIDs)
	if err != nil {
		return domain.Playlist{}, err
	}

	uc.publish(ctx, domain.PlaylistUpdated, playlist)
	return playlist, nil
}

func (uc *PlaylistUsecase) Delete(ctx context.Context, principal domain.Principal, id string) error {
	if err := uc.authorize(ctx, principal, id); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.publish(ctx, domain.PlaylistDeleted, domain.Playlist{ID: id, CreatorID: principal.UserID})
	return nil
}

func (uc *PlaylistUsecase) authorize(ctx context.Context, principal domain.Principal, id string) error {
	existing, err := uc.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !existing.OwnedBy(principal.UserID) {
		return domain.ErrForbidden
	}
	return nil
}

func (uc *PlaylistUsecase) publish(ctx context.Context, kind domain.PlaylistEventType, playlist domain.Playlist) {
	if uc.events == nil {
		return
	}

	event := domain.PlaylistEvent{
		Type:       kind,
		PlaylistID: playlist.ID,
		CreatorID:  playlist.CreatorID,
		TrackCount: len(playlist.Tracks),
		At:         uc.now(),
	}
	if err := uc.events.PublishPlaylistEvent(ctx, event); err != nil {
		slog.WarnContext(
			ctx, "failed to publish playlist event",
			slog.String("error", err.Error()),
			slog.String("playlist", playlist.ID),
			slog.String("module", "playlist"),
		)
	}
}
