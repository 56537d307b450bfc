package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"
)

type capturedEvents struct {
	events []event.Event
}

func (c *capturedEvents) OnEvent(e event.Event) {
	c.events = append(c.events, e)
}

func addEnemy(ecs *entity.ECS, pathIndex, slowTicks int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Enemies[id] = &component.Enemy{
		DefID:     defs.EnemySmall,
		PathIndex: pathIndex,
		Health:    3,
		MaxHealth: 3,
		SlowTicks: slowTicks,
	}
	return id
}

func TestMovementAdvances(t *testing.T) {
	ecs := entity.NewECS()
	s := NewMovementSystem(ecs, event.NewDispatcher())

	id := addEnemy(ecs, -1, 0)
	escaped := s.Update()

	assert.Equal(t, 0, escaped)
	assert.Equal(t, 0, ecs.Enemies[id].PathIndex, "first step enters the path")

	s.Update()
	assert.Equal(t, 1, ecs.Enemies[id].PathIndex)
}

func TestSlowSuppressesMovement(t *testing.T) {
	ecs := entity.NewECS()
	s := NewMovementSystem(ecs, event.NewDispatcher())

	id := addEnemy(ecs, 4, 2)

	s.Update()
	assert.Equal(t, 4, ecs.Enemies[id].PathIndex, "slowed enemy stands still")
	assert.Equal(t, 1, ecs.Enemies[id].SlowTicks)

	s.Update()
	assert.Equal(t, 4, ecs.Enemies[id].PathIndex)
	assert.Equal(t, 0, ecs.Enemies[id].SlowTicks)

	s.Update()
	assert.Equal(t, 5, ecs.Enemies[id].PathIndex, "moves again once the slow expires")
}

func TestEscapeRemovesAndCounts(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	captured := &capturedEvents{}
	dispatcher.Subscribe(event.EnemiesEscaped, captured)
	s := NewMovementSystem(ecs, dispatcher)

	addEnemy(ecs, len(grid.Path)-1, 0) // will step off the end
	addEnemy(ecs, len(grid.Path)-1, 0)
	surviving := addEnemy(ecs, 3, 0)

	escaped := s.Update()

	assert.Equal(t, 2, escaped)
	require.Len(t, ecs.Enemies, 1)
	assert.Equal(t, 4, ecs.Enemies[surviving].PathIndex)

	require.Len(t, captured.events, 1)
	payload, ok := captured.events[0].Data.(event.EscapePayload)
	require.True(t, ok)
	assert.Equal(t, 2, payload.Count)
}

func TestNoEscapeEventWhenNobodyEscapes(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	captured := &capturedEvents{}
	dispatcher.Subscribe(event.EnemiesEscaped, captured)
	s := NewMovementSystem(ecs, dispatcher)

	addEnemy(ecs, 0, 0)
	escaped := s.Update()

	assert.Equal(t, 0, escaped)
	assert.Empty(t, captured.events)
}
