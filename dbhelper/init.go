package dbhelper

import (
	"fmt"
	"os"
	"time"

	"smartcloset/services"
	"smartcloset/storage"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupDB() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(
		fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s",
			services.GetEnv("DB_USERNAME", ""),
			services.GetEnv("DB_PASSWORD", ""),
			services.GetEnv("DB_HOST", ""),
			services.GetEnv("DB_PORT", "5432"),
			services.GetEnv("DB_NAME", ""),
		),
	), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(time.Minute * 5)

	if err := Migrate(db, &storage.KeyValueEntry{}); err != nil {
		return nil, err
	}
	return db, nil
}

// SetupTestDB points at the local test database. Callers skip when DB_HOST
// is not configured.
func SetupTestDB() (*gorm.DB, error) {
	if os.Getenv("DB_USERNAME") == "" {
		os.Setenv("DB_USERNAME", "smartcloset")
		os.Setenv("DB_PASSWORD", "smartcloset")
		os.Setenv("DB_NAME", "smartcloset")
	}
	return SetupDB()
}
