package dbhelper

import (
	"fmt"

	"smartcloset/storage"

	"gorm.io/gorm"
)

func SetupCleaner(db *gorm.DB) func() {
	return func() {
		db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&storage.KeyValueEntry{})
	}
}

func Migrate(db *gorm.DB, model interface{}) error {
	if err := db.AutoMigrate(model); err != nil {
		return fmt.Errorf("migrate %T: %w", model, err)
	}
	return nil
}
