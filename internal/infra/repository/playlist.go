package repository

import (
	"context"
	"fmt"

	"github.com/lucsky/cuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/tunedeck/tunedeck/internal/domain"
	"github.com/tunedeck/tunedeck/internal/infra/database/models"
	"github.com/tunedeck/tunedeck/internal/query"
)

var playlistColumns = map[string]string{
	query.FieldPlaylist: "playlists.playlist_title",
	query.FieldCreator:  "playlists.creatorid",
}

type PlaylistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

func preloadTracks(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Tracks", func(db *gorm.DB) *gorm.DB {
			return db.Order(orderExpr(db, "tracks.title", false))
		}).
		Preload("Tracks.Artist").
		Preload("Tracks.Genre").
		Preload("Tracks.Album")
}

func (r *PlaylistRepository) List(ctx context.Context, spec query.FilterSpec) ([]domain.Playlist, error) {
	var playlists []models.Playlist
	err := r.db.WithContext(ctx).
		Scopes(preloadTracks, filterScope(spec, playlistColumns)).
		Find(&playlists).Error
	if err != nil {
		return nil, errors.Wrap(err, "list playlists")
	}
	return mapSlice(playlists, playlistToDomain), nil
}

func (r *PlaylistRepository) Get(ctx context.Context, id string) (domain.Playlist, error) {
	playlist, err := getPlaylist(ctx, r.db, id)
	if err != nil {
		return domain.Playlist{}, err
	}
	return playlistToDomain(playlist), nil
}

func getPlaylist(ctx context.Context, db *gorm.DB, id string) (models.Playlist, error) {
	var playlist models.Playlist
	err := db.WithContext(ctx).
		Scopes(preloadTracks).
		Where("pid = ?", id).
		Take(&playlist).Error
	if err != nil {
		return models.Playlist{}, notFound(err, "Playlist")
	}
	return playlist, nil
}

// Create stores the playlist and links the referenced tracks. Unknown track
// ids fail the whole operation.
func (r *PlaylistRepository) Create(ctx context.Context, playlist domain.Playlist, trackIDs []string) (domain.Playlist, error) {
	m := models.Playlist{
		PID:       playlist.ID,
		Title:     playlist.Title,
		CreatorID: playlist.CreatorID,
	}
	if m.PID == "" {
		m.PID = cuid.New()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tracks, err := findTracks(tx, trackIDs)
		if err != nil {
			return err
		}
		m.Tracks = tracks

		// link existing tracks without upserting them
		return tx.Omit("Tracks.*").Create(&m).Error
	})
	if err != nil {
		return domain.Playlist{}, wrapWrite(err, "create playlist")
	}

	return r.Get(ctx, m.PID)
}

// Update renames the playlist and, when trackIDs is non-nil, replaces its
// membership. Both changes commit together.
func (r *PlaylistRepository) Update(ctx context.Context, id string, title *string, trackIDs *[]string) (domain.Playlist, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m models.Playlist
		if err := tx.Where("pid = ?", id).Take(&m).Error; err != nil {
			return notFound(err, "Playlist")
		}

		if title != nil {
			if err := tx.Model(&m).Update("playlist_title", *title).Error; err != nil {
				return err
			}
		}

		if trackIDs != nil {
			tracks, err := findTracks(tx, *trackIDs)
			if err != nil {
				return err
			}
			assoc := tx.Model(&m).Association("Tracks")
			if len(tracks) == 0 {
				return assoc.Clear()
			}
			return assoc.Replace(tracks)
		}
		return nil
	})
	if err != nil {
		return domain.Playlist{}, wrapWrite(err, "update playlist")
	}

	return r.Get(ctx, id)
}

func (r *PlaylistRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m models.Playlist
		if err := tx.Where("pid = ?", id).Take(&m).Error; err != nil {
			return notFound(err, "Playlist")
		}
		if err := tx.Model(&m).Association("Tracks").Clear(); err != nil {
			return err
		}
		return tx.Delete(&m).Error
	})
	return wrapWrite(err, "delete playlist")
}

// findTracks loads the tracks for ids, dropping duplicates while keeping order.
func findTracks(tx *gorm.DB, ids []string) ([]models.Track, error) {
	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	if len(unique) == 0 {
		return nil, nil
	}

	var tracks []models.Track
	if err := tx.Where("tid IN ?", unique).Find(&tracks).Error; err != nil {
		return nil, err
	}
	if len(tracks) == len(unique) {
		return tracks, nil
	}

	found := make(map[string]bool, len(tracks))
	for _, t := range tracks {
		found[t.TID] = true
	}
	verr := &domain.ValidationError{}
	for _, id := range unique {
		if !found[id] {
			verr.Add("trackIds", fmt.Sprintf("Track %s does not exist", id))
		}
	}
	return nil, verr
}

// wrapWrite keeps domain errors intact and wraps everything else.
func wrapWrite(err error, msg string) error {
	if err == nil {
		return nil
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) || errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return errors.Wrap(err, msg)
}
