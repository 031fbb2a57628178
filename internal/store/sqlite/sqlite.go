// Package sqlite implements the record store on a local SQLite
// database. The record stays a single JSON document per user; the
// table only adds the key and timestamps.
package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cofrinho/backend/internal/store"
)

// financeRecord is the stored row. The document column holds the full
// record as JSON, including the encrypted amount tokens.
type financeRecord struct {
	ID        uuid.UUID `gorm:"primaryKey"`
	UserID    string    `gorm:"uniqueIndex"`
	Document  []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *financeRecord) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Store persists one finance record per user in SQLite.
type Store struct {
	db *gorm.DB
}

// Open connects to the database at path and migrates the schema.
func Open(path string) (*Store, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(sqlite.Open(path), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&financeRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) LoadRecord(ctx context.Context, userID string) (*store.Record, error) {
	var row financeRecord
	err := s.db.WithContext(ctx).First(&row, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading the stored record failed: %w", err)
	}

	var rec store.Record
	if err := json.Unmarshal(row.Document, &rec); err != nil {
		return nil, fmt.Errorf("the stored record is not readable: %w", err)
	}

	rec.Normalize()
	return &rec, nil
}

func (s *Store) UpsertRecord(ctx context.Context, record *store.Record) error {
	document, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding the record failed: %w", err)
	}

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
		}).
		Create(&financeRecord{UserID: record.UserID, Document: document}).Error
	if err != nil {
		return fmt.Errorf("storing the record failed: %w", err)
	}

	return nil
}
