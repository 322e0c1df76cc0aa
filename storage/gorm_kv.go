package storage

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KeyValueEntry is the gorm model behind GormKV. It shares the table layout
// of the sqlite engine.
type KeyValueEntry struct {
	EntryKey   string    `gorm:"primaryKey;column:entry_key"`
	EntryValue string    `gorm:"type:text;column:entry_value"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (KeyValueEntry) TableName() string {
	return "kv_entries"
}

type GormKV struct {
	db *gorm.DB
}

func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

func (s *GormKV) Get(ctx context.Context, key string) (string, error) {
	var entry KeyValueEntry
	r := s.db.WithContext(ctx).Limit(1).Find(&entry, "entry_key = ?", key)
	if r.Error != nil {
		return "", r.Error
	}
	if r.RowsAffected == 0 {
		return "", ErrNotFound
	}
	return entry.EntryValue, nil
}

func (s *GormKV) Set(ctx context.Context, key string, value string) error {
	entry := KeyValueEntry{EntryKey: key, EntryValue: value, UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"entry_value", "updated_at"}),
	}).Create(&entry).Error
}

func (s *GormKV) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&KeyValueEntry{}, "entry_key = ?", key).Error
}
