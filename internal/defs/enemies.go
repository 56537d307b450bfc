// internal/defs/enemies.go
package defs

import "image/color"

// EnemyType identifies an enemy kind.
type EnemyType string

const (
	EnemySmall  EnemyType = "SMALL"
	EnemyMedium EnemyType = "MEDIUM"
	EnemyLarge  EnemyType = "LARGE"
)

// Visuals contains parameters for drawing a catalog entry.
type Visuals struct {
	Symbol string
	Color  color.RGBA
}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID      EnemyType
	Name    string
	Health  int // base health; wave scaling is added on spawn
	Visuals Visuals
}

// EnemyLibrary is the library of all enemy definitions, mapped by their ID.
var EnemyLibrary = map[EnemyType]EnemyDefinition{
	EnemySmall: {
		ID:      EnemySmall,
		Name:    "Small",
		Health:  3,
		Visuals: Visuals{Symbol: "s", Color: color.RGBA{200, 80, 80, 255}},
	},
	EnemyMedium: {
		ID:      EnemyMedium,
		Name:    "Medium",
		Health:  6,
		Visuals: Visuals{Symbol: "m", Color: color.RGBA{170, 60, 170, 255}},
	},
	EnemyLarge: {
		ID:      EnemyLarge,
		Name:    "Large",
		Health:  10,
		Visuals: Visuals{Symbol: "L", Color: color.RGBA{120, 40, 40, 255}},
	},
}
