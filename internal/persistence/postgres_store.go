// internal/persistence/postgres_store.go
package persistence

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"serpentine-td/internal/save"
)

// PostgresStore keeps snapshots in a single jsonb-backed table so several
// machines can share one save list.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	s := &PostgresStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS game_saves (
			slot       TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("migrate saves table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(slot string, snapshot *save.Snapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal save %s: %w", slot, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO game_saves (slot, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (slot) DO UPDATE SET data = $2, updated_at = now()`,
		slot, raw)
	if err != nil {
		return fmt.Errorf("upsert save %s: %w", slot, err)
	}
	return nil
}

func (s *PostgresStore) Load(slot string) (*save.Snapshot, error) {
	var raw []byte
	err := s.db.QueryRow(`SELECT data FROM game_saves WHERE slot = $1`, slot).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query save %s: %w", slot, err)
	}
	return save.Unmarshal(raw)
}

func (s *PostgresStore) Delete(slot string) error {
	_, err := s.db.Exec(`DELETE FROM game_saves WHERE slot = $1`, slot)
	return err
}

func (s *PostgresStore) Close() error { return s.db.Close() }
