package save

import (
	"strings"
	"testing"

	"serpentine-td/internal/config"
	"serpentine-td/pkg/gridmap"
)

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name  string
		in    Snapshot
		check func(t *testing.T, s *Snapshot)
	}{
		{"Empty snapshot gets sane state", Snapshot{}, func(t *testing.T, s *Snapshot) {
			if s.Version != config.SaveSchemaVersion {
				t.Errorf("Version = %d", s.Version)
			}
			if s.Lives != config.StartingLives {
				t.Errorf("Lives = %d", s.Lives)
			}
			if s.Wave != 1 || s.Speed != 1 {
				t.Errorf("Wave/Speed = %d/%d", s.Wave, s.Speed)
			}
			if s.TurnBudget != config.BaseTurnBudget {
				t.Errorf("TurnBudget = %d", s.TurnBudget)
			}
		}},
		{"Valid fields survive", Snapshot{Gold: 300, Lives: 5, Wave: 7, Speed: 2}, func(t *testing.T, s *Snapshot) {
			if s.Gold != 300 || s.Lives != 5 || s.Wave != 7 || s.Speed != 2 {
				t.Errorf("Fields clobbered: %+v", s)
			}
		}},
		{"Zero gold is a legal value", Snapshot{Lives: 3}, func(t *testing.T, s *Snapshot) {
			if s.Gold != 0 {
				t.Errorf("Gold should stay 0, got %d", s.Gold)
			}
		}},
		{"Out-of-range speed clamps", Snapshot{Speed: 17}, func(t *testing.T, s *Snapshot) {
			if s.Speed != 1 {
				t.Errorf("Speed = %d", s.Speed)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.in
			s.ApplyDefaults()
			tt.check(t, &s)
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := &Snapshot{
		Version: config.SaveSchemaVersion,
		Seed:    1234,
		Gold:    88,
		Lives:   12,
		Wave:    6,
		Speed:   3,
		Towers: []TowerRecord{
			{DefID: "TOWER_SHOOTER", Level: 2, TotalCost: 100, Kills: 9},
		},
	}

	encoded, err := in.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if strings.ContainsAny(encoded, "{}\" ") {
		t.Error("Export should be opaque base64, not raw JSON")
	}

	out, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if out.Seed != 1234 || out.Gold != 88 || out.Wave != 6 || out.Speed != 3 {
		t.Errorf("Round trip mangled scalars: %+v", out)
	}
	if len(out.Towers) != 1 || out.Towers[0].Kills != 9 {
		t.Errorf("Round trip mangled towers: %+v", out.Towers)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode("!!! not base64"); err == nil {
		t.Error("Expected error for junk input")
	}
	// Valid base64, invalid JSON.
	if _, err := Decode("aGVsbG8="); err == nil {
		t.Error("Expected error for non-JSON payload")
	}
}

func TestValidateVersionGate(t *testing.T) {
	s := &Snapshot{Version: config.SaveSchemaVersion + 1}
	if err := s.Validate(); err == nil {
		t.Error("Expected rejection of a newer save version")
	}
}

func TestValidateGridShape(t *testing.T) {
	makeSnapshot := func() *Snapshot {
		grid := gridmap.NewOpenGrid(4, 3)
		grid.Path = []gridmap.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}
		return &Snapshot{Version: config.SaveSchemaVersion, Wave: 1, Lives: 1, Speed: 1, Grid: grid}
	}

	if err := makeSnapshot().Validate(); err != nil {
		t.Fatalf("Well-formed grid rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Snapshot)
	}{
		{"Missing tile rows", func(s *Snapshot) {
			s.Grid.Tiles = s.Grid.Tiles[:2]
		}},
		{"Short tile row", func(s *Snapshot) {
			s.Grid.Tiles[1] = s.Grid.Tiles[1][:1]
		}},
		{"Path off the grid", func(s *Snapshot) {
			s.Grid.Path[1] = gridmap.Cell{X: 9, Y: 9}
		}},
		{"Single-cell path", func(s *Snapshot) {
			s.Grid.Path = s.Grid.Path[:1]
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := makeSnapshot()
			tt.mutate(s)
			if err := s.Validate(); err == nil {
				t.Error("Expected validation to fail")
			}
		})
	}
}
