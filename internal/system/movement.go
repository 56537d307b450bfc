// internal/system/movement.go
package system

import (
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/pkg/grid"
)

// MovementSystem advances enemies along the path. A slowed enemy spends
// the tick decrementing its slow counter instead of moving.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update moves every enemy one step and removes the ones that walk off
// the end of the path. It returns how many escaped this tick.
func (s *MovementSystem) Update() int {
	escaped := 0
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		if enemy.SlowTicks > 0 {
			enemy.SlowTicks--
			continue
		}
		enemy.PathIndex++
		if enemy.PathIndex >= len(grid.Path) {
			delete(s.ecs.Enemies, id)
			escaped++
		}
	}
	if escaped > 0 {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemiesEscaped,
			Data: event.EscapePayload{Count: escaped},
		})
	}
	return escaped
}
