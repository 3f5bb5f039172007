package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"

	"github.com/tunedeck/tunedeck/internal/config"
	"github.com/tunedeck/tunedeck/internal/infra/cache"
	"github.com/tunedeck/tunedeck/internal/infra/database"
	"github.com/tunedeck/tunedeck/internal/infra/repository"
	"github.com/tunedeck/tunedeck/internal/infra/telemetry"
	"github.com/tunedeck/tunedeck/internal/present/rest"
	"github.com/tunedeck/tunedeck/internal/present/rest/middleware"
	"github.com/tunedeck/tunedeck/internal/service"
	"github.com/tunedeck/tunedeck/internal/usecase"
	"github.com/tunedeck/tunedeck/internal/validation"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "migrate",
				Usage: "Migrate the schema before serving",
			},
		},
		Action: serve,
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create or update the database schema",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withDatabase(cmd, func(conf config.Config, db *gorm.DB) error {
				if err := database.Migrate(db); err != nil {
					return errors.Wrap(err, "migrate")
				}
				slog.InfoContext(ctx, "schema migrated")
				return nil
			})
		},
	}
}

func importCommand() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Load genres, albums and tracks from a YAML catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "Path to the catalog file",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			raw, err := os.ReadFile(cmd.String("file"))
			if err != nil {
				return errors.Wrap(err, "read catalog")
			}

			return withDatabase(cmd, func(conf config.Config, db *gorm.DB) error {
				catalog := usecase.NewCatalogUsecase(repository.NewCatalogRepository(db), validation.New(), newCache(conf))
				summary, err := catalog.Import(ctx, raw)
				if err != nil {
					return err
				}
				slog.InfoContext(
					ctx, "catalog imported",
					slog.Int("genres", summary.Genres),
					slog.Int("albums", summary.Albums),
					slog.Int("tracks", summary.Tracks),
				)
				return nil
			})
		},
	}
}

// withDatabase runs fn against a database opened from the configuration and
// releases the handle afterwards.
func withDatabase(cmd *cli.Command, fn func(conf config.Config, db *gorm.DB) error) error {
	conf, err := config.Read(cmd.String("config"))
	if err != nil {
		return err
	}
	newLogger(conf.Log)
	if err := conf.ValidateDatabase(); err != nil {
		return err
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		return errors.Wrap(err, "connect database")
	}
	handle := database.NewHandle(db)
	defer handle.Release()

	return fn(conf, db)
}

// newCache shares read caches through memcached when configured. The
// in-process fallback is private to this process.
func newCache(conf config.Config) usecase.Cache {
	if conf.Server.MemcachedAddr != "" {
		return cache.NewMemcached(database.NewMemcached(conf.Server.MemcachedAddr))
	}
	return cache.NewMemory(conf.Cache.TTL)
}

func serve(ctx context.Context, cmd *cli.Command) error {
	conf, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	logger := newLogger(conf.Log)

	if conf.Server.EnableTrace {
		shutdown, err := telemetry.SetupTracer(ctx, "tunedeck", version, conf.Server.TraceEndpoint)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("tracer shutdown", slog.String("error", err.Error()))
			}
		}()
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		return errors.Wrap(err, "connect database")
	}
	handle := database.NewHandle(db)
	defer handle.Release()

	if cmd.Bool("migrate") {
		if err := database.Migrate(db); err != nil {
			return errors.Wrap(err, "migrate")
		}
	}

	shared, err := handle.Acquire()
	if err != nil {
		return err
	}
	defer handle.Release()

	sqlDB, err := shared.DB()
	if err != nil {
		return errors.Wrap(err, "database pool")
	}

	var events usecase.EventPublisher
	if conf.Server.RedisAddr != "" {
		rdb := database.NewRedis(conf.Server.RedisAddr, conf.Server.RedisPassword, conf.Server.RedisDB)
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis ping", slog.String("error", err.Error()))
		}
		defer rdb.Close()
		events = service.NewSignalService(rdb)
	}

	store := newCache(conf)

	auth := service.NewAuthService(conf.Auth.JWTSecret, conf.Auth.TokenTTL)

	artists := repository.NewArtistRepository(shared)
	albums := repository.NewAlbumRepository(shared)
	genres := repository.NewGenreRepository(shared)
	tracks := repository.NewTrackRepository(shared)
	playlists := repository.NewPlaylistRepository(shared)

	handler := rest.NewHandler(
		validation.New(),
		usecase.NewAccountUsecase(artists, auth, conf.Auth.BcryptCost),
		usecase.NewArtistUsecase(artists, albums, tracks),
		usecase.NewDiscoverUsecase(genres, tracks, store, conf.Cache.TTL),
		usecase.NewLyricsUsecase(tracks, store, conf.Cache.TTL),
		usecase.NewSearchUsecase(artists, albums, tracks),
		usecase.NewPlaylistUsecase(playlists, events),
		sqlDB,
	)

	e := rest.NewServer(handler, middleware.NewAuthMiddleware(auth), rest.ServerConfig{
		ServiceName:    "tunedeck",
		AllowOrigins:   conf.CORS.AllowOrigins,
		LoginRateLimit: conf.Auth.LoginRateLimit,
		EnableTrace:    conf.Server.EnableTrace,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("listening on %s", conf.Server.Addr))
		if err := e.Start(conf.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return errors.Wrap(err, "http server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
