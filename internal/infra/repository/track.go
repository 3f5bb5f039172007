package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/tunedeck/tunedeck/internal/domain"
	"github.com/tunedeck/tunedeck/internal/infra/database/models"
	"github.com/tunedeck/tunedeck/internal/query"
)

var trackColumns = map[string]string{
	query.FieldTrackTitle: "tracks.title",
	query.FieldTrackAlbum: "tracks.albumid",
	query.FieldTrackGenre: "tracks.genreid",
	query.FieldArtistName: `"Artist"."name"`,
}

type TrackRepository struct {
	db *gorm.DB
}

func NewTrackRepository(db *gorm.DB) *TrackRepository {
	return &TrackRepository{db: db}
}

func (r *TrackRepository) List(ctx context.Context, spec query.FilterSpec) ([]domain.Track, error) {
	var tracks []models.Track
	err := r.db.WithContext(ctx).
		Joins("Artist").
		Joins("Genre").
		Joins("Album").
		Scopes(filterScope(spec, trackColumns)).
		Find(&tracks).Error
	if err != nil {
		return nil, errors.Wrap(err, "list tracks")
	}
	return mapSlice(tracks, trackToDomain), nil
}

func (r *TrackRepository) Get(ctx context.Context, id string) (domain.Track, error) {
	var track models.Track
	err := r.db.WithContext(ctx).
		Joins("Artist").
		Joins("Genre").
		Joins("Album").
		Where("tracks.tid = ?", id).
		Take(&track).Error
	if err != nil {
		return domain.Track{}, notFound(err, "Track")
	}
	return trackToDomain(track), nil
}
