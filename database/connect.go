package database

import (
	"fmt"

	"pawfect_grooming/config"
	"pawfect_grooming/model"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Open connects to the configured database without migrating it.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	case "postgres":
		pg := cfg.Postgres
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			pg.Host, pg.Port, pg.User, pg.Password, pg.DBName, pg.SSLMode)
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if cfg.Driver == "sqlite" {
		// sqlite allows a single writer
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.LoginHistory{},
		&model.Pet{},
		&model.ServiceOption{},
		&model.Package{},
		&model.Booking{},
		&model.Voucher{},
		&model.Payment{},
		&model.FAQ{},
		&model.Holiday{},
		&model.MailOutbox{},
	)
}

// ConnectDB opens, migrates and optionally seeds the database, then publishes it as DB.
func ConnectDB(cfg *config.Config) error {
	db, err := Open(cfg.Database)
	if err != nil {
		return err
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("connection opened to database")

	if err := Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info().Msg("database migrated")

	if cfg.Database.Seed {
		SeedData(db, cfg.Auth)
	}

	DB = db
	return nil
}

func Ping() error {
	if DB == nil {
		return fmt.Errorf("database not connected")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
