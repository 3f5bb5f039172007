package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/tunedeck/tunedeck/internal/domain"
	"github.com/tunedeck/tunedeck/internal/infra/database/models"
	"github.com/tunedeck/tunedeck/internal/query"
)

var genreColumns = map[string]string{
	query.FieldGenreName: "genres.genre",
}

type GenreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

func (r *GenreRepository) List(ctx context.Context, spec query.FilterSpec) ([]domain.Genre, error) {
	var genres []models.Genre
	err := r.db.WithContext(ctx).
		Scopes(filterScope(spec, genreColumns)).
		Find(&genres).Error
	if err != nil {
		return nil, errors.Wrap(err, "list genres")
	}
	return mapSlice(genres, genreToDomain), nil
}
