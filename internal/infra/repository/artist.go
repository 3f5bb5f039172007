package repository

import (
	"context"

	"github.com/lucsky/cuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/tunedeck/tunedeck/internal/domain"
	"github.com/tunedeck/tunedeck/internal/infra/database/models"
	"github.com/tunedeck/tunedeck/internal/query"
)

var artistColumns = map[string]string{
	query.FieldArtistName: "artists.name",
}

type ArtistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

func (r *ArtistRepository) List(ctx context.Context, spec query.FilterSpec) ([]domain.Artist, error) {
	var artists []models.Artist
	err := r.db.WithContext(ctx).
		Scopes(filterScope(spec, artistColumns)).
		Find(&artists).Error
	if err != nil {
		return nil, errors.Wrap(err, "list artists")
	}
	return mapSlice(artists, artistToDomain), nil
}

func (r *ArtistRepository) Get(ctx context.Context, id string) (domain.Artist, error) {
	var artist models.Artist
	err := r.db.WithContext(ctx).
		Where("aid = ?", id).
		Take(&artist).Error
	if err != nil {
		return domain.Artist{}, notFound(err, "Artist")
	}
	return artistToDomain(artist), nil
}

// GetProfile loads the artist with its albums and tracks, both ordered by title.
func (r *ArtistRepository) GetProfile(ctx context.Context, id string) (domain.Artist, error) {
	var artist models.Artist
	err := r.db.WithContext(ctx).
		Preload("Albums", func(db *gorm.DB) *gorm.DB {
			return db.Order(orderExpr(db, "albums.title", false))
		}).
		Preload("Tracks", func(db *gorm.DB) *gorm.DB {
			return db.Order(orderExpr(db, "tracks.title", false))
		}).
		Where("aid = ?", id).
		Take(&artist).Error
	if err != nil {
		return domain.Artist{}, notFound(err, "User")
	}
	return artistToDomain(artist), nil
}

func (r *ArtistRepository) FindByEmail(ctx context.Context, email string) (domain.Artist, error) {
	var artist models.Artist
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Take(&artist).Error
	if err != nil {
		return domain.Artist{}, notFound(err, "User")
	}
	return artistToDomain(artist), nil
}

func (r *ArtistRepository) Create(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	if artist.ID == "" {
		artist.ID = cuid.New()
	}
	if artist.Gender == "" {
		artist.Gender = domain.GenderUndefined
	}
	if artist.Type == "" {
		artist.Type = domain.AccountArtist
	}

	m := models.Artist{
		AID:             artist.ID,
		Email:           artist.Email,
		Password:        artist.PasswordHash,
		Name:            artist.Name,
		Gender:          string(artist.Gender),
		Type:            string(artist.Type),
		Bio:             artist.Bio,
		ProfileImageURL: artist.ProfileImageURL,
	}

	err := r.db.WithContext(ctx).Create(&m).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.Artist{}, domain.ConflictError{Message: "Email is already registered"}
	}
	if err != nil {
		return domain.Artist{}, errors.Wrap(err, "create artist")
	}
	return artistToDomain(m), nil
}

// notFound turns gorm's record-not-found into the domain error for resource.
func notFound(err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFoundError{Resource: resource}
	}
	return errors.Wrapf(err, "get %s", resource)
}
