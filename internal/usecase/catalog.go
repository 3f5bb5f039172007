package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-yaml/yaml"
	"github.com/pkg/errors"

	"github.com/tunedeck/tunedeck/internal/domain"
	"github.com/tunedeck/tunedeck/internal/validation"
)

// Catalog is the YAML document accepted by Import. Entries without an id get
// a fresh one; tracks must reference albums and genres by id.
type Catalog struct {
	Genres []CatalogGenre `yaml:"genres"`
	Albums []CatalogAlbum `yaml:"albums"`
	Tracks []CatalogTrack `yaml:"tracks"`
}

type CatalogGenre struct {
	ID                    string `yaml:"id"`
	validation.GenreInput `yaml:",inline"`
}

type CatalogAlbum struct {
	ID                    string `yaml:"id"`
	validation.AlbumInput `yaml:",inline"`
}

type CatalogTrack struct {
	ID                    string `yaml:"id"`
	validation.TrackInput `yaml:",inline"`
}

// ImportSummary counts the records written by Import.
type ImportSummary struct {
	Genres int
	Albums int
	Tracks int
}

type CatalogUsecase struct {
	repo      CatalogRepository
	validator *validation.Validator
	cache     Cache
}

func NewCatalogUsecase(repo CatalogRepository, validator *validation.Validator, cache Cache) *CatalogUsecase {
	return &CatalogUsecase{
		repo:      repo,
		validator: validator,
		cache:     cache,
	}
}

// Import parses a YAML catalog, validates every entry and writes all of them
// in one transaction. Any invalid entry aborts the import before writing.
func (uc *CatalogUsecase) Import(ctx context.Context, raw []byte) (ImportSummary, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return ImportSummary{}, domain.MalformedRequestError{Cause: errors.Wrap(err, "parse catalog")}
	}

	verr := &domain.ValidationError{}
	for i, g := range catalog.Genres {
		uc.check(verr, fmt.Sprintf("genres[%d]", i), g.ID, &g.GenreInput)
	}
	for i, a := range catalog.Albums {
		uc.check(verr, fmt.Sprintf("albums[%d]", i), a.ID, &a.AlbumInput)
	}
	for i, t := range catalog.Tracks {
		uc.check(verr, fmt.Sprintf("tracks[%d]", i), t.ID, &t.TrackInput)
	}
	if len(verr.Fields) > 0 {
		return ImportSummary{}, verr
	}

	genres := make([]domain.Genre, 0, len(catalog.Genres))
	for _, g := range catalog.Genres {
		genre := domain.Genre{ID: g.ID, Name: domain.GenreUndefined, CoverURL: g.CoverURL}
		if g.Genre != nil {
			genre.Name = domain.GenreName(*g.Genre)
		}
		genres = append(genres, genre)
	}

	albums := make([]domain.Album, 0, len(catalog.Albums))
	for _, a := range catalog.Albums {
		albums = append(albums, domain.Album{ID: a.ID, Title: a.Title, Cover: a.Cover, ArtistID: a.ArtistID})
	}

	tracks := make([]domain.Track, 0, len(catalog.Tracks))
	for _, t := range catalog.Tracks {
		tracks = append(tracks, domain.Track{
			ID:                 t.ID,
			Title:              t.Title,
			Duration:           t.Duration,
			Lyrics:             t.Lyrics,
			HostedDirectoryURL: t.HostedDirectoryURL,
			ArtistID:           t.ArtistID,
			GenreID:            t.GenreID,
			AlbumID:            t.AlbumID,
		})
	}

	if err := uc.repo.Import(ctx, genres, albums, tracks); err != nil {
		return ImportSummary{}, err
	}

	// the discover listing must pick up imported genres
	if err := uc.cache.Delete(ctx, genresCacheKey); err != nil {
		slog.WarnContext(ctx, "genre cache invalidation failed", slog.String("error", err.Error()), slog.String("module", "catalog"))
	}
	return ImportSummary{Genres: len(genres), Albums: len(albums), Tracks: len(tracks)}, nil
}

func (uc *CatalogUsecase) check(verr *domain.ValidationError, prefix, id string, input any) {
	if id != "" && !validation.IsCUID(id) {
		verr.Add(prefix+".id", "Invalid cuid")
	}

	err := uc.validator.Struct(input)
	if err == nil {
		return
	}
	var fields *domain.ValidationError
	if !errors.As(err, &fields) {
		verr.Add(prefix, err.Error())
		return
	}
	for field, msgs := range fields.Fields {
		for _, msg := range msgs {
			verr.Add(prefix+"."+field, msg)
		}
	}
}
