// internal/system/cleanup.go
package system

import (
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
)

// CleanupSystem removes dead enemies after the attack phase and pays
// out the kill bounty.
type CleanupSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCleanupSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CleanupSystem {
	return &CleanupSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update deletes every enemy at or below zero health and returns the
// defeat count and the total coin reward.
func (s *CleanupSystem) Update() (defeated, reward int) {
	for _, id := range s.ecs.EnemyIDs() {
		if s.ecs.Enemies[id].Health <= 0 {
			delete(s.ecs.Enemies, id)
			defeated++
		}
	}
	if defeated > 0 {
		reward = defeated * config.KillReward
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemiesDefeated,
			Data: event.DefeatPayload{Count: defeated, Reward: reward},
		})
	}
	return defeated, reward
}
