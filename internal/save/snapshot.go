// internal/save/snapshot.go
package save

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"serpentine-td/internal/config"
	"serpentine-td/pkg/gridmap"
)

// TowerRecord captures one placed tower.
type TowerRecord struct {
	DefID     string       `json:"defId"`
	Cell      gridmap.Cell `json:"cell"`
	Level     int          `json:"level"`
	TotalCost int          `json:"totalCost"`
	Kills     int          `json:"kills"`
}

// Snapshot is everything needed to restore a game between waves. Enemies
// and projectiles in flight are deliberately not saved; a load always lands
// in the build phase.
type Snapshot struct {
	Version    int            `json:"version"`
	Seed       int64          `json:"seed"`
	Gold       int            `json:"gold"`
	Lives      int            `json:"lives"`
	Score      int            `json:"score"`
	Wave       int            `json:"wave"`
	TurnBudget int            `json:"turnBudget"`
	Speed      int            `json:"speed"`
	Grid       *gridmap.Grid  `json:"grid"`
	Towers     []TowerRecord  `json:"towers"`
}

// ApplyDefaults patches missing or nonsense fields so older or hand-edited
// saves still load. Each field falls back independently.
func (s *Snapshot) ApplyDefaults() {
	if s.Version <= 0 {
		s.Version = config.SaveSchemaVersion
	}
	if s.Gold < 0 {
		s.Gold = config.StartingGold
	}
	if s.Lives <= 0 {
		s.Lives = config.StartingLives
	}
	if s.Score < 0 {
		s.Score = 0
	}
	if s.Wave <= 0 {
		s.Wave = 1
	}
	if s.TurnBudget <= 0 {
		s.TurnBudget = config.BaseTurnBudget
	}
	if s.Speed < 1 || s.Speed > config.MaxSpeedFactor {
		s.Speed = 1
	}
}

// Validate rejects snapshots that cannot be repaired by defaults.
func (s *Snapshot) Validate() error {
	if s.Version > config.SaveSchemaVersion {
		return fmt.Errorf("save version %d is newer than supported %d", s.Version, config.SaveSchemaVersion)
	}
	if s.Grid != nil {
		if s.Grid.Cols <= 0 || s.Grid.Rows <= 0 {
			return fmt.Errorf("save grid has invalid dimensions %dx%d", s.Grid.Cols, s.Grid.Rows)
		}
		if len(s.Grid.Tiles) != s.Grid.Rows {
			return fmt.Errorf("save grid has %d tile rows, header says %d", len(s.Grid.Tiles), s.Grid.Rows)
		}
		for y, row := range s.Grid.Tiles {
			if len(row) != s.Grid.Cols {
				return fmt.Errorf("save grid row %d has %d tiles, header says %d", y, len(row), s.Grid.Cols)
			}
		}
		if len(s.Grid.Path) < 2 {
			return fmt.Errorf("save grid path has %d cells, need at least 2", len(s.Grid.Path))
		}
		for _, c := range s.Grid.Path {
			if !s.Grid.Contains(c) {
				return fmt.Errorf("save grid path leaves the grid at %v", c)
			}
		}
	}
	return nil
}

// Encode packs the snapshot into a base64 string for clipboard export.
func (s *Snapshot) Encode() (string, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Decode unpacks a base64 export back into a snapshot, applying defaults.
func Decode(encoded string) (*Snapshot, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return Unmarshal(raw)
}

// Unmarshal parses raw snapshot JSON, applying defaults and validation.
func Unmarshal(raw []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
