// internal/system/combat.go
package system

import (
	"log"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"
)

// CombatSystem runs tower attacks: cooldown bookkeeping, target
// selection and damage/slow application.
type CombatSystem struct {
	ecs *entity.ECS
}

func NewCombatSystem(ecs *entity.ECS) *CombatSystem {
	return &CombatSystem{ecs: ecs}
}

// Update processes every tower in placement order. A tower on cooldown
// only counts down; a ready tower that finds no target keeps its cooldown
// at zero and retries next tick.
func (s *CombatSystem) Update() {
	for _, id := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[id]
		def, ok := defs.TowerLibrary[tower.DefID]
		if !ok {
			log.Printf("CombatSystem: tower definition not found for ID %s", tower.DefID)
			continue
		}
		stats := def.Stats(tower.Level)

		if tower.Cooldown > 0 {
			tower.Cooldown--
			continue
		}

		targetID, found := s.findTarget(id, stats.Range)
		if !found {
			continue
		}

		enemy := s.ecs.Enemies[targetID]
		enemy.Health -= stats.Damage
		if stats.SlowTicks > 0 && stats.SlowTicks > enemy.SlowTicks {
			// Slow does not stack; a new hit refreshes to the longer duration.
			enemy.SlowTicks = stats.SlowTicks
		}
		if pos, ok := entity.EnemyPosition(enemy); ok {
			s.ecs.HitMarks[pos] = config.HitMarkerTTL
		}
		tower.Cooldown = stats.CooldownTicks
	}
}

// findTarget picks the in-range enemy that is furthest along the path.
// Range is Manhattan distance; ties go to the lowest entity id, i.e. the
// enemy spawned first.
func (s *CombatSystem) findTarget(towerID types.EntityID, rangeRadius int) (types.EntityID, bool) {
	tower := s.ecs.Towers[towerID]
	var bestID types.EntityID
	bestIndex := -1
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		pos, ok := entity.EnemyPosition(enemy)
		if !ok {
			continue
		}
		if grid.Manhattan(tower.Pos, pos) > rangeRadius {
			continue
		}
		if enemy.PathIndex > bestIndex {
			bestIndex = enemy.PathIndex
			bestID = id
		}
	}
	return bestID, bestIndex >= 0
}
