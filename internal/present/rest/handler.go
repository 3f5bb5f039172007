package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/tunedeck/tunedeck/internal/domain"
	"github.com/tunedeck/tunedeck/internal/present/rest/middleware"
	"github.com/tunedeck/tunedeck/internal/present/rest/presenter"
	"github.com/tunedeck/tunedeck/internal/usecase"
	"github.com/tunedeck/tunedeck/internal/validation"
)

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	validator *validation.Validator
	account   *usecase.AccountUsecase
	artist    *usecase.ArtistUsecase
	discover  *usecase.DiscoverUsecase
	lyrics    *usecase.LyricsUsecase
	search    *usecase.SearchUsecase
	playlist  *usecase.PlaylistUsecase
	health    HealthChecker
}

func NewHandler(
	validator *validation.Validator,
	account *usecase.AccountUsecase,
	artist *usecase.ArtistUsecase,
	discover *usecase.DiscoverUsecase,
	lyrics *usecase.LyricsUsecase,
	search *usecase.SearchUsecase,
	playlist *usecase.PlaylistUsecase,
	health HealthChecker,
) *Handler {
	return &Handler{
		validator: validator,
		account:   account,
		artist:    artist,
		discover:  discover,
		lyrics:    lyrics,
		search:    search,
		playlist:  playlist,
		health:    health,
	}
}

// RegisterRoutes mounts the API. Protected routes carry the auth middleware
// themselves so unmatched paths and preflights never require a token.
func (h *Handler) RegisterRoutes(e *echo.Echo, auth *middleware.AuthMiddleware, authLimit echo.MiddlewareFunc) {
	protected := auth.RequireAuth

	e.GET("/healthz", h.handleHealth)

	api := e.Group("/api")
	api.POST("/auth/register", h.handleRegister, authLimit)
	api.POST("/auth/login", h.handleLogin, authLimit)
	api.GET("/lyrics", h.handleLyrics)
	api.GET("/search", h.handleSearch)

	api.GET("/artist", h.handleArtistList, protected)
	api.GET("/artist/:artistId", h.handleArtistProfile, protected)
	api.GET("/artist/:artistId/:albumId", h.handleAlbumTracks, protected)
	api.GET("/discover", h.handleGenres, protected)
	api.GET("/discover/:genreId", h.handleGenreTracks, protected)
	api.GET("/playlist", h.handlePlaylistList, protected)
	api.POST("/playlist", h.handlePlaylistCreate, protected)
	api.GET("/playlist/:playlistId", h.handlePlaylistGet, protected)
	api.PUT("/playlist/:playlistId", h.handlePlaylistUpdate, protected)
	api.DELETE("/playlist/:playlistId", h.handlePlaylistDelete, protected)
	api.GET("/profile", h.handleProfile, protected)
}

func (h *Handler) handleHealth(c echo.Context) error {
	if err := h.health.PingContext(c.Request().Context()); err != nil {
		return err
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleRegister(c echo.Context) error {
	ctx := c.Request().Context()

	input, err := decodeBody[validation.RegisterInput](c, h.validator)
	if err != nil {
		return err
	}

	artist, err := h.account.Register(ctx, *input)
	if err != nil {
		return err
	}

	return presenter.Created(c, echo.Map{"message": "User registered successfully", "userId": artist.ID})
}

func (h *Handler) handleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	input, err := decodeBody[validation.LoginInput](c, h.validator)
	if err != nil {
		return err
	}

	token, err := h.account.Login(ctx, *input)
	if err != nil {
		return err
	}

	return presenter.OK(c, echo.Map{"success": "Login successful", "token": token})
}

func (h *Handler) handleProfile(c echo.Context) error {
	ctx := c.Request().Context()

	principal, err := principalOf(ctx)
	if err != nil {
		return err
	}

	profile, err := h.account.Profile(ctx, principal)
	if err != nil {
		return err
	}

	return presenter.OK(c, echo.Map{"profile": toProfileView(profile)})
}

func (h *Handler) handleArtistList(c echo.Context) error {
	artists, err := h.artist.List(c.Request().Context(), c.QueryParams())
	if err != nil {
		return err
	}
	return presenter.OK(c, echo.Map{"artistList": mapViews(artists, toArtistSummary)})
}

func (h *Handler) handleArtistProfile(c echo.Context) error {
	artistID, err := pathParam(c, "artistId")
	if err != nil {
		return err
	}

	artist, albums, err := h.artist.Profile(c.Request().Context(), artistID)
	if err != nil {
		return err
	}

	return presenter.OK(c, echo.Map{
		"artist": artistDetail{
			Name:            artist.Name,
			ProfileImageURL: artist.ProfileImageURL,
			Bio:             artist.Bio,
		},
		"albums": mapViews(albums, func(a domain.Album) albumView {
			return albumView{AAID: a.ID, Title: a.Title, AlbumCover: a.Cover}
		}),
	})
}

func (h *Handler) handleAlbumTracks(c echo.Context) error {
	albumID, err := pathParam(c, "albumId")
	if err != nil {
		return err
	}

	tracks, err := h.artist.AlbumTracks(c.Request().Context(), albumID, c.QueryParams())
	if err != nil {
		return err
	}
	return presenter.OK(c, echo.Map{"trackList": mapViews(tracks, toTrackView)})
}

func (h *Handler) handleGenres(c echo.Context) error {
	genres, err := h.discover.Genres(c.Request().Context())
	if err != nil {
		return err
	}
	return presenter.OK(c, echo.Map{"genreList": mapViews(genres, toGenreView)})
}

func (h *Handler) handleGenreTracks(c echo.Context) error {
	genreID, err := pathParam(c, "genreId")
	if err != nil {
		return err
	}

	tracks, err := h.discover.GenreTracks(c.Request().Context(), genreID, c.QueryParams())
	if err != nil {
		return err
	}
	return presenter.OK(c, echo.Map{"trackList": mapViews(tracks, toTrackView)})
}

// handleLyrics always answers 200; failures are reported through a null
// lyrics field and an error message.
func (h *Handler) handleLyrics(c echo.Context) error {
	ctx := c.Request().Context()

	lyrics, err := h.lyrics.Lookup(ctx, c.QueryParams())
	if err != nil {
		msg := "Internal server error"
		switch {
		case errors.Is(err, usecase.ErrMissingTitle):
			msg = err.Error()
		case errors.Is(err, domain.ErrNotFound):
			msg = usecase.ErrLyricsNotFound.Error()
		default:
			slog.ErrorContext(ctx, "lyrics lookup failed", slog.String("error", err.Error()), slog.String("module", "rest"))
		}
		return presenter.OK(c, lyricsMiss{Error: msg})
	}

	return presenter.OK(c, lyricsView{Lyrics: lyrics.Text, Title: lyrics.Title, Artist: lyrics.Artist})
}

func (h *Handler) handleSearch(c echo.Context) error {
	result, err := h.search.Search(c.Request().Context(), c.QueryParams())
	if err != nil {
		return err
	}
	return presenter.OK(c, echo.Map{
		"artists": mapViews(result.Artists, toArtistSummary),
		"albums":  mapViews(result.Albums, toAlbumView),
		"tracks":  mapViews(result.Tracks, toTrackView),
	})
}

func (h *Handler) handlePlaylistList(c echo.Context) error {
	ctx := c.Request().Context()

	principal, err := principalOf(ctx)
	if err != nil {
		return err
	}

	playlists, err := h.playlist.List(ctx, principal)
	if err != nil {
		return err
	}
	return presenter.OK(c, echo.Map{"playlists": mapViews(playlists, toPlaylistView)})
}

func (h *Handler) handlePlaylistCreate(c echo.Context) error {
	ctx := c.Request().Context()

	principal, err := principalOf(ctx)
	if err != nil {
		return err
	}

	input, err := decodeBody[validation.PlaylistInput](c, h.validator)
	if err != nil {
		return err
	}

	playlist, err := h.playlist.Create(ctx, principal, *input)
	if err != nil {
		return err
	}
	return presenter.Created(c, echo.Map{"playlist": toPlaylistView(playlist)})
}

func (h *Handler) handlePlaylistGet(c echo.Context) error {
	playlistID, err := pathParam(c, "playlistId")
	if err != nil {
		return err
	}

	playlist, err := h.playlist.Get(c.Request().Context(), playlistID)
	if err != nil {
		return err
	}
	return presenter.OK(c, echo.Map{"playlist": toPlaylistView(playlist)})
}

func (h *Handler) handlePlaylistUpdate(c echo.Context) error {
	ctx := c.Request().Context()

	principal, err := principalOf(ctx)
	if err != nil {
		return err
	}

	playlistID, err := pathParam(c, "playlistId")
	if err != nil {
		return err
	}

	input, err := decodeBody[validation.PlaylistUpdateInput](c, h.validator)
	if err != nil {
		return err
	}

	playlist, err := h.playlist.Update(ctx, principal, playlistID, *input)
	if err != nil {
		return err
	}
	return presenter.OK(c, echo.Map{"playlist": toPlaylistView(playlist)})
}

func (h *Handler) handlePlaylistDelete(c echo.Context) error {
	ctx := c.Request().Context()

	principal, err := principalOf(ctx)
	if err != nil {
		return err
	}

	playlistID, err := pathParam(c, "playlistId")
	if err != nil {
		return err
	}

	if err := h.playlist.Delete(ctx, principal, playlistID); err != nil {
		return err
	}
	return presenter.OK(c, echo.Map{"success": "Playlist deleted successfully"})
}

func principalOf(ctx context.Context) (domain.Principal, error) {
	principal, ok := domain.PrincipalFromContext(ctx)
	if !ok {
		return domain.Principal{}, domain.ErrUnauthenticated
	}
	return principal, nil
}

func pathParam(c echo.Context, name string) (string, error) {
	value, err := url.PathUnescape(c.Param(name))
	if err != nil {
		return "", domain.MalformedRequestError{Cause: err}
	}
	return value, nil
}

func decodeBody[T any](c echo.Context, v *validation.Validator) (*T, error) {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, domain.MalformedRequestError{Cause: err}
	}
	return validation.Decode[T](v, raw)
}
