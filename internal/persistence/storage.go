// internal/persistence/storage.go
package persistence

import (
	"errors"
	"os"

	"serpentine-td/internal/save"
)

// ErrNotFound is returned when a save slot has never been written.
var ErrNotFound = errors.New("save slot not found")

// Storage persists game snapshots keyed by slot name.
type Storage interface {
	Save(slot string, snapshot *save.Snapshot) error
	Load(slot string) (*save.Snapshot, error)
	Delete(slot string) error
	Close() error
}

// FromEnv picks a backend from the environment: a non-empty DATABASE_URL
// selects Postgres, otherwise snapshots go to JSON files under SAVE_DIR
// (defaulting to the working directory).
func FromEnv() (Storage, error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return NewPostgresStore(dsn)
	}
	dir := os.Getenv("SAVE_DIR")
	if dir == "" {
		dir = "."
	}
	return NewJSONStore(dir)
}
