package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tunedeck/tunedeck/internal/infra/database/models"
)

// Config returns the gorm configuration shared by every dialect.
func Config() *gorm.Config {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             300 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  false,
		},
	)

	return &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger,
	}
}

func NewPostgres(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), Config())
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Artist{},
		&models.Genre{},
		&models.Album{},
		&models.Track{},
		&models.Playlist{},
	)
}
