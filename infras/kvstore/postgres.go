package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"travelease/config"
	"travelease/infras/postgres"

	"github.com/rs/zerolog/log"
)

// PostgresStore maps the key-value contract onto a single kv_entries
// table. Reads go to the read replica, writes to the primary.
type PostgresStore struct {
	conn *postgres.Connection
}

func NewPostgresStore(cfg *config.Config) *PostgresStore {
	return &PostgresStore{conn: postgres.New(cfg)}
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.conn.Read.GetContext(ctx, &value, "SELECT value FROM kv_entries WHERE key = $1", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("PostgresStore", "Get").Msg("failed to read store entry")

		return nil, false, fmt.Errorf("failed to read store entry: %w", err)
	}

	return value, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.conn.Write.ExecContext(
		ctx,
		`INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key,
		value,
	)
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("PostgresStore", "Set").Msg("failed to write store entry")

		return fmt.Errorf("failed to write store entry: %w", err)
	}

	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	_, err := s.conn.Write.ExecContext(ctx, "DELETE FROM kv_entries WHERE key = $1", key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("PostgresStore", "Delete").Msg("failed to delete store entry")

		return fmt.Errorf("failed to delete store entry: %w", err)
	}

	return nil
}
