package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"
)

func TestEntityIDsAscend(t *testing.T) {
	ecs := NewECS()
	var ids []types.EntityID
	for i := 0; i < 5; i++ {
		id := ecs.NewEntity()
		ids = append(ids, id)
		ecs.Enemies[id] = &component.Enemy{DefID: defs.EnemySmall, PathIndex: i}
	}
	assert.Equal(t, ids, ecs.EnemyIDs(), "iteration follows spawn order")
}

func TestEnemyPosition(t *testing.T) {
	e := &component.Enemy{PathIndex: -1}
	_, ok := EnemyPosition(e)
	assert.False(t, ok, "not yet on the board")

	e.PathIndex = 0
	pos, ok := EnemyPosition(e)
	require.True(t, ok)
	assert.Equal(t, grid.Path[0], pos)

	e.PathIndex = len(grid.Path)
	_, ok = EnemyPosition(e)
	assert.False(t, ok, "escaped")
}

func TestCanPlace(t *testing.T) {
	ecs := NewECS()

	for _, p := range grid.Path {
		assert.False(t, ecs.CanPlace(p), "path cell %v", p)
	}
	free := grid.Position{Row: 0, Col: 0}
	assert.True(t, ecs.CanPlace(free))
	assert.False(t, ecs.CanPlace(grid.Position{Row: 7, Col: 0}), "off the board")

	id := ecs.NewEntity()
	ecs.Towers[id] = &component.Tower{DefID: defs.TowerArcher, Pos: free, Level: 1}
	assert.False(t, ecs.CanPlace(free), "occupied")

	// Every other off-path cell stays placeable.
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			pos := grid.Position{Row: row, Col: col}
			if grid.IsPath(pos) || pos == free {
				continue
			}
			assert.True(t, ecs.CanPlace(pos), "cell %v", pos)
		}
	}
}

func TestLookupsAndReset(t *testing.T) {
	ecs := NewECS()
	towerPos := grid.Position{Row: 2, Col: 0}
	towerID := ecs.NewEntity()
	ecs.Towers[towerID] = &component.Tower{DefID: defs.TowerFrost, Pos: towerPos, Level: 1}
	enemyID := ecs.NewEntity()
	ecs.Enemies[enemyID] = &component.Enemy{DefID: defs.EnemySmall, PathIndex: 1, Health: 3, MaxHealth: 3}
	ecs.HitMarks[towerPos] = 2
	ecs.Wave = &component.Wave{Number: 1}

	id, tower, ok := ecs.TowerAt(towerPos)
	require.True(t, ok)
	assert.Equal(t, towerID, id)
	assert.Equal(t, defs.TowerFrost, tower.DefID)
	_, _, ok = ecs.TowerAt(grid.Position{Row: 3, Col: 0})
	assert.False(t, ok)

	id, enemy, ok := ecs.EnemyAt(grid.Path[1])
	require.True(t, ok)
	assert.Equal(t, enemyID, id)
	assert.Equal(t, 3, enemy.Health)

	ecs.Reset()
	assert.Empty(t, ecs.Enemies)
	assert.Empty(t, ecs.Towers)
	assert.Empty(t, ecs.HitMarks)
	assert.Nil(t, ecs.Wave)
	assert.Equal(t, types.EntityID(1), ecs.NewEntity(), "id allocation restarts")
}
