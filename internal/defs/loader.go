// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadTowerDefinitions replaces or extends the built-in tower catalog from a
// JSON file holding an array of TowerDefinition.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	for _, def := range towerDefs {
		TowerLibrary[def.ID] = def
	}
	return nil
}

// LoadEnemyDefinitions replaces or extends the built-in enemy catalog from a
// JSON file holding an array of EnemyDefinition.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	for _, def := range enemyDefs {
		EnemyLibrary[def.ID] = def
	}
	return nil
}
