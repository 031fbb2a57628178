// Package backend selects and opens the configured record store. It
// is the only place that knows every adapter; everything else sees
// the store port.
package backend

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/cofrinho/backend/internal/config"
	"github.com/cofrinho/backend/internal/store"
	"github.com/cofrinho/backend/internal/store/memory"
	"github.com/cofrinho/backend/internal/store/mongo"
	"github.com/cofrinho/backend/internal/store/sqlite"
)

// Open returns the record store for the configuration. A backend that
// cannot be opened degrades to store.Unavailable: the session keeps
// working, the user is warned that nothing persists.
func Open(ctx context.Context, cfg *config.Config) store.Store {
	switch cfg.StoreBackend {
	case "memory":
		return memory.New()

	case "sqlite":
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			log.Error().Err(err).Str("path", cfg.SQLitePath).Msg("could not open the sqlite store, finance data will not persist")
			return store.Unavailable{}
		}
		return s

	default:
		if cfg.MongoURI == "" {
			log.Warn().Msg("MONGODB_URI is not set, finance data will not persist")
			return store.Unavailable{}
		}
		s, err := mongo.Connect(ctx, cfg.MongoURI)
		if err != nil {
			log.Error().Err(err).Msg("could not reach mongodb, finance data will not persist")
			return store.Unavailable{}
		}
		return s
	}
}
