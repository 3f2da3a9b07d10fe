package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tropicaldog17/cryptofolio/internal/db"
)

// Record is one row of the kv_records table.
type Record struct {
	Key       string    `gorm:"primaryKey;column:record_key;type:varchar(255)"`
	Value     string    `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for the Record model
func (Record) TableName() string {
	return "kv_records"
}

type gormKV struct {
	db *db.DB
}

// NewGormKV returns a KV backed by the kv_records table, creating it if needed.
func NewGormKV(database *db.DB) (KV, error) {
	if err := database.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_records: %w", err)
	}
	return &gormKV{db: database}, nil
}

func (s *gormKV) Get(ctx context.Context, key string) ([]byte, error) {
	var rec Record
	if err := s.db.WithContext(ctx).First(&rec, "record_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get record %s: %w", key, err)
	}
	return []byte(rec.Value), nil
}

func (s *gormKV) Put(ctx context.Context, key string, value []byte) error {
	rec := Record{Key: key, Value: string(value), UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "record_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&rec).Error
	})
	if err != nil {
		return fmt.Errorf("failed to put record %s: %w", key, err)
	}
	return nil
}
