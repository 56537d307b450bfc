package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"
)

func addTower(ecs *entity.ECS, defID defs.TowerType, pos grid.Position, level, cooldown int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Towers[id] = &component.Tower{DefID: defID, Pos: pos, Level: level, Cooldown: cooldown}
	return id
}

func TestCooldownCountsDownWithoutFiring(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs)

	towerID := addTower(ecs, defs.TowerArcher, grid.Position{Row: 0, Col: 0}, 1, 2)
	enemyID := addEnemy(ecs, 0, 0) // path[0] = (0,1), distance 1

	s.Update()
	assert.Equal(t, 1, ecs.Towers[towerID].Cooldown)
	assert.Equal(t, 3, ecs.Enemies[enemyID].Health, "tower on cooldown does not fire")

	s.Update()
	assert.Equal(t, 0, ecs.Towers[towerID].Cooldown)
	assert.Equal(t, 3, ecs.Enemies[enemyID].Health, "the tick reaching zero still does not fire")

	s.Update()
	assert.Equal(t, 2, ecs.Enemies[enemyID].Health, "fires once ready")
	assert.Equal(t, 2, ecs.Towers[towerID].Cooldown, "cooldown reset after the shot")
}

func TestNoTargetKeepsCooldownAtZero(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs)

	towerID := addTower(ecs, defs.TowerArcher, grid.Position{Row: 0, Col: 0}, 1, 0)
	addEnemy(ecs, -1, 0) // not on the path yet, untargetable

	s.Update()
	assert.Equal(t, 0, ecs.Towers[towerID].Cooldown, "a dry tick does not start the cooldown")
}

func TestTargetsFurthestAlongPath(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs)

	// Archer at (2,0): path[2]=(2,1) dist 1, path[3]=(3,1) dist 2.
	addTower(ecs, defs.TowerArcher, grid.Position{Row: 2, Col: 0}, 1, 0)
	near := addEnemy(ecs, 2, 0)
	far := addEnemy(ecs, 3, 0)

	s.Update()
	assert.Equal(t, 3, ecs.Enemies[near].Health)
	assert.Equal(t, 2, ecs.Enemies[far].Health, "the enemy closest to escaping is hit")
}

func TestTieBreakPrefersFirstSpawned(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs)

	addTower(ecs, defs.TowerArcher, grid.Position{Row: 2, Col: 0}, 1, 0)
	first := addEnemy(ecs, 2, 0)
	second := addEnemy(ecs, 2, 0)

	s.Update()
	assert.Equal(t, 2, ecs.Enemies[first].Health, "lower id wins the tie")
	assert.Equal(t, 3, ecs.Enemies[second].Health)
}

func TestOutOfRangeIgnored(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs)

	// Archer level 1 range 2; path[11] = (6,4) is far from (0,0).
	towerID := addTower(ecs, defs.TowerArcher, grid.Position{Row: 0, Col: 0}, 1, 0)
	enemyID := addEnemy(ecs, 11, 0)

	s.Update()
	assert.Equal(t, 3, ecs.Enemies[enemyID].Health)
	assert.Equal(t, 0, ecs.Towers[towerID].Cooldown)
}

func TestFrostSlowRefreshesToMax(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs)

	addTower(ecs, defs.TowerFrost, grid.Position{Row: 0, Col: 0}, 1, 0) // slow 2, damage 0
	enemyID := addEnemy(ecs, 0, 0)
	ecs.Enemies[enemyID].SlowTicks = 3

	s.Update()
	assert.Equal(t, 3, ecs.Enemies[enemyID].SlowTicks, "a weaker slow never shortens the current one")
	assert.Equal(t, 3, ecs.Enemies[enemyID].Health, "level 1 frost deals no damage")

	ecs.Enemies[enemyID].SlowTicks = 1
	ecs.Towers[ecs.TowerIDs()[0]].Cooldown = 0
	s.Update()
	assert.Equal(t, 2, ecs.Enemies[enemyID].SlowTicks, "refreshed up to the tower's slow duration")
}

func TestHitMarkerPlacedAtTargetCell(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs)

	addTower(ecs, defs.TowerArcher, grid.Position{Row: 0, Col: 0}, 1, 0)
	addEnemy(ecs, 1, 0) // path[1] = (1,1)

	s.Update()
	require.Contains(t, ecs.HitMarks, grid.Position{Row: 1, Col: 1})
	assert.Equal(t, 3, ecs.HitMarks[grid.Position{Row: 1, Col: 1}])
}

func TestHealthMayGoNegativeUntilCleanup(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs)

	addTower(ecs, defs.TowerBlaze, grid.Position{Row: 0, Col: 0}, 1, 0) // damage 3
	enemyID := addEnemy(ecs, 0, 0)
	ecs.Enemies[enemyID].Health = 1

	s.Update()
	assert.Equal(t, -2, ecs.Enemies[enemyID].Health)
	require.Len(t, ecs.Enemies, 1, "combat never removes enemies itself")
}
