package repository

import (
	"context"

	"github.com/lucsky/cuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tunedeck/tunedeck/internal/domain"
	"github.com/tunedeck/tunedeck/internal/infra/database/models"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Import upserts genres, albums and tracks in one transaction, in that order
// so references resolve.
func (r *CatalogRepository) Import(ctx context.Context, genres []domain.Genre, albums []domain.Album, tracks []domain.Track) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, g := range genres {
			m := models.Genre{GID: idOrNew(g.ID), Genre: string(g.Name), CoverURL: g.CoverURL}
			if m.Genre == "" {
				m.Genre = string(domain.GenreUndefined)
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "genre"}},
				DoUpdates: clause.AssignmentColumns([]string{"genre_cover_url"}),
			}).Create(&m).Error
			if err != nil {
				return errors.Wrapf(err, "import genre %s", m.Genre)
			}
		}

		for _, a := range albums {
			m := models.Album{AAID: idOrNew(a.ID), Title: a.Title, Cover: a.Cover, ArtistID: a.ArtistID}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "aaid"}},
				DoUpdates: clause.AssignmentColumns([]string{"title", "album_cover", "artistid"}),
			}).Create(&m).Error
			if err != nil {
				return errors.Wrapf(err, "import album %s", m.Title)
			}
		}

		for _, t := range tracks {
			m := models.Track{
				TID:                idOrNew(t.ID),
				Title:              t.Title,
				ArtistID:           t.ArtistID,
				Duration:           t.Duration,
				GenreID:            t.GenreID,
				AlbumID:            t.AlbumID,
				Lyrics:             t.Lyrics,
				HostedDirectoryURL: t.HostedDirectoryURL,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "tid"}},
				DoUpdates: clause.AssignmentColumns([]string{"title", "r_aid", "duration", "genreid", "albumid", "lyrics", "hosted_directory_url"}),
			}).Create(&m).Error
			if err != nil {
				return errors.Wrapf(err, "import track %s", m.Title)
			}
		}
		return nil
	})
}

func idOrNew(id string) string {
	if id == "" {
		return cuid.New()
	}
	return id
}
