package database

import (
	"MediCore/config"
	"MediCore/models"
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the database connection, configures the pool and verifies it.
func InitDB(ctx context.Context, cfg *config.AppConfig, log zerolog.Logger) (*gorm.DB, error) {
	// Configure logging level based on environment
	logMode := logger.Silent
	if cfg.IsDev() {
		logMode = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DBURL), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database connection")
	}

	if err := configureConnectionPool(db, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns); err != nil {
		return nil, err
	}
	if err := testDatabaseConnection(ctx, db); err != nil {
		return nil, err
	}

	log.Info().Int("max_open_conns", cfg.DBMaxOpenConns).Msg("database initialized")
	return db, nil
}

func configureConnectionPool(db *gorm.DB, maxOpen, maxIdle int) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB from GORM")
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	return nil
}

func testDatabaseConnection(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB from GORM")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping database")
	}
	return nil
}

// Models lists every persisted entity in migration order.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Doctor{},
		&models.Appointment{},
		&models.Staff{},
		&models.Room{},
		&models.Admission{},
		&models.Billing{},
		&models.Disease{},
		&models.Prescription{},
		&models.ChatSession{},
		&models.ChatMessage{},
	}
}

// Migrate performs database schema migrations.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to run migrations")
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB from GORM")
	}
	return sqlDB.Close()
}
