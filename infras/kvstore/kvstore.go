// Package kvstore provides the key-value backends that hold the
// serialized application collections. Every collection lives under a
// single key; values are opaque JSON payloads.
package kvstore

import (
	"context"
	"travelease/config"

	"github.com/rs/zerolog/log"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Store is a minimal key-value contract. Get reports ok=false when the
// key has never been written, which callers treat as an empty collection.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// New builds the Store selected by STORE_DRIVER. Unknown drivers fall
// back to the in-memory store so the service still boots.
func New(cfg *config.Config) Store {
	switch cfg.Store.Driver {
	case DriverFile:
		store, err := NewFileStore(cfg.Store.File.Dir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Store.File.Dir).Msg("Failed to initialize file store")
		}

		return store
	case DriverRedis:
		return NewRedisStore(cfg)
	case DriverPostgres:
		return NewPostgresStore(cfg)
	case DriverMemory:
		return NewMemoryStore()
	default:
		log.Warn().Str("driver", cfg.Store.Driver).Msg("Unknown store driver, falling back to memory")

		return NewMemoryStore()
	}
}
