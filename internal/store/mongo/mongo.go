// Package mongo implements the record store on a MongoDB collection,
// one document per user with a unique index on the user key.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	driver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/cofrinho/backend/internal/store"
)

const (
	databaseName   = "finance_app"
	collectionName = "user_finances"

	// serverSelectionTimeout bounds how long a session waits on an
	// unreachable cluster before degrading.
	serverSelectionTimeout = 5 * time.Second
)

// Store persists one finance record per user in the user_finances
// collection.
type Store struct {
	client  *driver.Client
	records *driver.Collection
}

// Connect opens a client for uri, verifies the deployment is
// reachable and ensures the unique user index. Callers degrade to
// store.Unavailable when this fails; a missing database must never
// take the session down.
func Connect(ctx context.Context, uri string) (*Store, error) {
	client, err := driver.Connect(options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(serverSelectionTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, serverSelectionTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongodb is not reachable: %w", err)
	}

	records := client.Database(databaseName).Collection(collectionName)
	_, err = records.Indexes().CreateOne(ctx, driver.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ensure the user index: %w", err)
	}

	log.Info().Msg("connected to mongodb")
	return &Store{client: client, records: records}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) LoadRecord(ctx context.Context, userID string) (*store.Record, error) {
	var rec store.Record
	err := s.records.FindOne(ctx, bson.M{"user_id": userID}).Decode(&rec)
	if errors.Is(err, driver.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading the stored record failed: %w", err)
	}

	rec.Normalize()
	return &rec, nil
}

func (s *Store) UpsertRecord(ctx context.Context, record *store.Record) error {
	_, err := s.records.ReplaceOne(ctx,
		bson.M{"user_id": record.UserID},
		record,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("storing the record failed: %w", err)
	}

	return nil
}
