package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sjperalta/contratus-api/internal/models"
	pkgLogger "github.com/sjperalta/contratus-api/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect establishes a connection to the PostgreSQL database
func Connect(databaseURL, environment string) (*gorm.DB, error) {
	// Configure GORM logger
	logLevel := logger.Warn
	if environment != "production" {
		logLevel = logger.Info
	}

	gormLogger := pkgLogger.NewGormLogger(
		logLevel,
		200*time.Millisecond,
	)

	// Open database connection
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Ping checks that the pool still reaches PostgreSQL
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Models lists every persisted type in dependency order
func Models() []any {
	return []any{
		&models.Team{},
		&models.User{},
		&models.RefreshToken{},
		&models.ConstructionCompany{},
		&models.Development{},
		&models.UnitType{},
		&models.Unit{},
		&models.Client{},
		&models.Proposal{},
		&models.Contract{},
		&models.ContractHistory{},
		&models.Commission{},
		&models.Settings{},
		&models.Notification{},
		&models.AuditLog{},
	}
}

// Migrate creates or updates the schema, including the unique indexes the
// numbering retry relies on
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	pkgLogger.Info("Database migrated", "tables", len(Models()))
	return nil
}
