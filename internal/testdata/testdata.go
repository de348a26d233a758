// Package testdata holds known-good move generator fixtures, loaded from YAML rather
// than hardcoded as Go literals so the fixture set can grow independently of the test
// code that exercises it.
package testdata

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed positions.yaml
var positionsYAML []byte

// Position is a single perft fixture: a FEN string paired with known-good leaf counts
// at a handful of depths.
type Position struct {
	Name  string         `yaml:"name"`
	FEN   string         `yaml:"fen"`
	Perft map[int]uint64 `yaml:"perft"`
}

// Positions parses and returns the embedded perft fixture set.
func Positions() ([]Position, error) {
	var positions []Position
	if err := yaml.Unmarshal(positionsYAML, &positions); err != nil {
		return nil, fmt.Errorf("parse perft fixtures: %w", err)
	}
	return positions, nil
}
