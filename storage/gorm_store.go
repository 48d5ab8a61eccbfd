package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// KVRecord is the single table behind the Postgres backend: one row per key,
// value stored as serialized JSON.
type KVRecord struct {
	Key   string `gorm:"primaryKey;type:varchar(255)"`
	Value []byte `gorm:"type:jsonb"`
}

// GormStore is the Postgres-backed Store, for deployments that already run
// a database and want the log history queryable server-side.
type GormStore struct {
	db *gorm.DB
}

// OpenPostgres connects with a standard DSN and migrates the kv table.
func OpenPostgres(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&KVRecord{}); err != nil {
		return nil, fmt.Errorf("AutoMigrate failed: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(key string, out any) (bool, error) {
	var rec KVRecord
	err := s.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(rec.Value, out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *GormStore) Put(key string, val any) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	rec := KVRecord{Key: key, Value: raw}
	return s.db.Save(&rec).Error
}

func (s *GormStore) Delete(key string) error {
	return s.db.Delete(&KVRecord{}, "key = ?", key).Error
}

func (s *GormStore) Reset() error {
	return s.db.Where("1 = 1").Delete(&KVRecord{}).Error
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
