// internal/defs/towers.go
package defs

import "image/color"

// TowerType identifies a buildable tower kind.
type TowerType string

const (
	TowerArcher TowerType = "ARCHER"
	TowerFrost  TowerType = "FROST"
	TowerBlaze  TowerType = "BLAZE"
)

// LevelStats is the immutable stat block for one tower level.
type LevelStats struct {
	Damage        int // may be 0 for pure-utility levels
	Range         int // Manhattan distance
	CooldownTicks int
	SlowTicks     int // 0 = no slow on hit
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID           TowerType
	Name         string
	Cost         int
	Levels       []LevelStats // index 0 = level 1; max level = len(Levels)
	UpgradeCosts []int        // cost to go from level i+1 to i+2; len = MaxLevel-1
	Visuals      Visuals
}

// MaxLevel returns the highest level this tower can reach.
func (d *TowerDefinition) MaxLevel() int {
	return len(d.Levels)
}

// Stats returns the stat block for the given level, clamped into
// [1, MaxLevel].
func (d *TowerDefinition) Stats(level int) LevelStats {
	if level < 1 {
		level = 1
	}
	if level > len(d.Levels) {
		level = len(d.Levels)
	}
	return d.Levels[level-1]
}

// UpgradeCost returns the cost of upgrading from the given level.
// The second return value is false at or above max level.
func (d *TowerDefinition) UpgradeCost(fromLevel int) (int, bool) {
	if fromLevel < 1 || fromLevel >= d.MaxLevel() {
		return 0, false
	}
	return d.UpgradeCosts[fromLevel-1], true
}

// InvestedCost returns the build cost plus every upgrade cost paid to
// reach the given level. It is the base of the removal refund.
func (d *TowerDefinition) InvestedCost(level int) int {
	total := d.Cost
	for l := 1; l < level && l <= len(d.UpgradeCosts); l++ {
		total += d.UpgradeCosts[l-1]
	}
	return total
}

// TowerOrder fixes the palette ordering of the tower types.
var TowerOrder = []TowerType{TowerArcher, TowerFrost, TowerBlaze}

// TowerLibrary is the library of all tower definitions, mapped by their ID.
var TowerLibrary = map[TowerType]TowerDefinition{
	TowerArcher: {
		ID:   TowerArcher,
		Name: "Archer",
		Cost: 5,
		Levels: []LevelStats{
			{Damage: 1, Range: 2, CooldownTicks: 2},
			{Damage: 2, Range: 2, CooldownTicks: 2},
			{Damage: 3, Range: 3, CooldownTicks: 1},
		},
		UpgradeCosts: []int{6, 8},
		Visuals:      Visuals{Symbol: "A", Color: color.RGBA{80, 180, 60, 255}},
	},
	TowerFrost: {
		ID:   TowerFrost,
		Name: "Frost",
		Cost: 7,
		Levels: []LevelStats{
			{Damage: 0, Range: 2, CooldownTicks: 2, SlowTicks: 2},
			{Damage: 1, Range: 2, CooldownTicks: 2, SlowTicks: 3},
			{Damage: 1, Range: 3, CooldownTicks: 1, SlowTicks: 4},
		},
		UpgradeCosts: []int{7, 10},
		Visuals:      Visuals{Symbol: "F", Color: color.RGBA{90, 160, 230, 255}},
	},
	TowerBlaze: {
		ID:   TowerBlaze,
		Name: "Blaze",
		Cost: 9,
		Levels: []LevelStats{
			{Damage: 3, Range: 2, CooldownTicks: 3},
			{Damage: 4, Range: 2, CooldownTicks: 3},
			{Damage: 6, Range: 3, CooldownTicks: 2},
		},
		UpgradeCosts: []int{10, 14},
		Visuals:      Visuals{Symbol: "B", Color: color.RGBA{230, 120, 50, 255}},
	},
}
