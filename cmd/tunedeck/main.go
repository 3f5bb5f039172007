package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/tunedeck/tunedeck/internal/config"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Sources: cli.EnvVars("TUNEDECK_CONFIG"),
	}

	app := &cli.Command{
		Name:    "tunedeck",
		Usage:   "Music streaming API",
		Version: version,
		Flags:   []cli.Flag{configFlag},
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			importCommand(),
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newLogger installs the slog handler selected by the log section.
func newLogger(conf config.Log) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(conf.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(conf.Format, "text") {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler).With(slog.String("service", "tunedeck"))
	slog.SetDefault(logger)
	return logger
}
