package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/tunedeck/tunedeck/internal/domain"
	"github.com/tunedeck/tunedeck/internal/infra/database/models"
	"github.com/tunedeck/tunedeck/internal/query"
)

var albumColumns = map[string]string{
	query.FieldAlbumTitle:  "albums.title",
	query.FieldAlbumArtist: "albums.artistid",
}

type AlbumRepository struct {
	db *gorm.DB
}

func NewAlbumRepository(db *gorm.DB) *AlbumRepository {
	return &AlbumRepository{db: db}
}

func (r *AlbumRepository) List(ctx context.Context, spec query.FilterSpec) ([]domain.Album, error) {
	var albums []models.Album
	err := r.db.WithContext(ctx).
		Scopes(filterScope(spec, albumColumns)).
		Find(&albums).Error
	if err != nil {
		return nil, errors.Wrap(err, "list albums")
	}
	return mapSlice(albums, albumToDomain), nil
}
