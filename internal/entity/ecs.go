// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"
)

// ECS owns every live entity. Enemies and towers are stored in maps keyed
// by their entity id; HitMarks is the transient per-cell hit-flash channel.
type ECS struct {
	NextID   types.EntityID
	Enemies  map[types.EntityID]*component.Enemy
	Towers   map[types.EntityID]*component.Tower
	HitMarks map[grid.Position]int // position -> remaining ticks
	Wave     *component.Wave       // nil until a wave has been prepared
}

func NewECS() *ECS {
	return &ECS{
		NextID:   1,
		Enemies:  make(map[types.EntityID]*component.Enemy),
		Towers:   make(map[types.EntityID]*component.Tower),
		HitMarks: make(map[grid.Position]int),
	}
}

// NewEntity allocates the next entity id.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Reset drops every entity and marker and restarts id allocation.
func (ecs *ECS) Reset() {
	ecs.NextID = 1
	clear(ecs.Enemies)
	clear(ecs.Towers)
	clear(ecs.HitMarks)
	ecs.Wave = nil
}

// EnemyIDs returns the live enemy ids in ascending order. Targeting
// tie-breaks and per-tick processing both follow this order, so first
// spawned wins among equals.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Enemies))
	for id := range ecs.Enemies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// TowerIDs returns the placed tower ids in ascending (placement) order.
func (ecs *ECS) TowerIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Towers))
	for id := range ecs.Towers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// EnemyPosition derives an enemy's cell from its path index. The second
// return value is false while the enemy is off the board.
func EnemyPosition(e *component.Enemy) (grid.Position, bool) {
	return grid.PathAt(e.PathIndex)
}

// TowerAt returns the tower occupying the given cell, if any.
func (ecs *ECS) TowerAt(pos grid.Position) (types.EntityID, *component.Tower, bool) {
	for _, id := range ecs.TowerIDs() {
		if t := ecs.Towers[id]; t.Pos == pos {
			return id, t, true
		}
	}
	return 0, nil, false
}

// EnemyAt returns the first enemy (in id order) standing on the given cell.
func (ecs *ECS) EnemyAt(pos grid.Position) (types.EntityID, *component.Enemy, bool) {
	for _, id := range ecs.EnemyIDs() {
		e := ecs.Enemies[id]
		if p, ok := EnemyPosition(e); ok && p == pos {
			return id, e, true
		}
	}
	return 0, nil, false
}

// IsOccupied reports whether a tower stands on the cell.
func (ecs *ECS) IsOccupied(pos grid.Position) bool {
	_, _, ok := ecs.TowerAt(pos)
	return ok
}

// CanPlace reports whether a tower may be built on the cell: on the board,
// off the path and unoccupied.
func (ecs *ECS) CanPlace(pos grid.Position) bool {
	return grid.Contains(pos) && !grid.IsPath(pos) && !ecs.IsOccupied(pos)
}
