// internal/persistence/json_store.go
package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"serpentine-td/internal/save"
)

// JSONStore writes one pretty-printed JSON file per slot.
type JSONStore struct {
	dir string
}

func NewJSONStore(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create save dir %s: %w", dir, err)
	}
	return &JSONStore{dir: dir}, nil
}

func (j *JSONStore) path(slot string) string {
	name := strings.ReplaceAll(slot, string(os.PathSeparator), "_")
	return filepath.Join(j.dir, name+".json")
}

func (j *JSONStore) Save(slot string, snapshot *save.Snapshot) error {
	raw, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal save %s: %w", slot, err)
	}
	tmp := j.path(slot) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write save %s: %w", slot, err)
	}
	if err := os.Rename(tmp, j.path(slot)); err != nil {
		return fmt.Errorf("commit save %s: %w", slot, err)
	}
	return nil
}

func (j *JSONStore) Load(slot string) (*save.Snapshot, error) {
	raw, err := os.ReadFile(j.path(slot))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read save %s: %w", slot, err)
	}
	return save.Unmarshal(raw)
}

func (j *JSONStore) Delete(slot string) error {
	err := os.Remove(j.path(slot))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (j *JSONStore) Close() error { return nil }
