package database

import (
	"fmt"

	"github.com/lshigami/SigmaLearn/config"
	"github.com/lshigami/SigmaLearn/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the local store that backs client tokens and cached
// profiles. Postgres is used in deployments, sqlite for a single machine.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.Database)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
	if cfg.IsProduction() {
		gormCfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.Database.Driver).Msg("Failed to connect to database")
		return nil, fmt.Errorf("open %s database: %w", cfg.Database.Driver, err)
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("Database connection established")
	return db, nil
}

func dialectorFor(db config.Database) (gorm.Dialector, error) {
	switch db.Driver {
	case "postgres", "postgresql":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			db.Host, db.User, db.Password, db.Name, db.Port)
		return postgres.Open(dsn), nil
	case "", "sqlite":
		path := db.Path
		if path == "" {
			path = "sigmalearn.db"
		}
		return sqlite.Open(path), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", db.Driver)
	}
}

// AutoMigrate creates or updates the local tables.
func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.ClientToken{},
		&model.UserProfile{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
