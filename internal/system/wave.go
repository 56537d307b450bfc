// internal/system/wave.go
package system

import (
	"log"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/utils"
)

// WaveSystem prepares waves and spawns their enemies on the tick cadence.
type WaveSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewWaveSystem(ecs *entity.ECS, rng *utils.PRNGService) *WaveSystem {
	return &WaveSystem{ecs: ecs, rng: rng}
}

// PrepareWave builds the wave state for wave n: spawn budget
// 5 + (n-1)*2 enemies, one spawn every max(4 - n/3, 1) ticks.
func (s *WaveSystem) PrepareWave(n int) *component.Wave {
	interval := config.InitialSpawnInterval - n/3
	if interval < config.MinSpawnInterval {
		interval = config.MinSpawnInterval
	}
	return &component.Wave{
		Number:         n,
		EnemiesToSpawn: config.EnemiesPerWave + (n-1)*config.EnemiesIncrementPerWave,
		SpawnInterval:  interval,
	}
}

// Update advances the wave by one tick and spawns an enemy when the
// cadence says so: on the very first tick, then every SpawnInterval ticks.
func (s *WaveSystem) Update(wave *component.Wave) {
	if wave == nil {
		return
	}
	wave.TickCount++
	if wave.Spawned >= wave.EnemiesToSpawn {
		return
	}
	if wave.TickCount == 1 || wave.TickCount%wave.SpawnInterval == 0 {
		s.spawnEnemy(wave)
		wave.Spawned++
	}
}

// Cleared reports whether the wave is over: fully spawned and no enemy
// left alive on the board.
func (s *WaveSystem) Cleared(wave *component.Wave) bool {
	return wave != nil && wave.Spawned >= wave.EnemiesToSpawn && len(s.ecs.Enemies) == 0
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	defID := s.PickEnemyType(wave.Number)
	def, ok := defs.EnemyLibrary[defID]
	if !ok {
		log.Printf("WaveSystem: enemy definition not found for ID %s", defID)
		return
	}

	scaling := wave.Number - 1
	if scaling < 0 {
		scaling = 0
	}
	health := def.Health + scaling

	id := s.ecs.NewEntity()
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:     defID,
		PathIndex: -1,
		Health:    health,
		MaxHealth: health,
	}
}

// PickEnemyType rolls the wave-dependent type distribution: waves 1-3 are
// all small, 4-6 split evenly between small and medium, and from wave 7 on
// the mix is 40% small, 40% medium, 20% large.
func (s *WaveSystem) PickEnemyType(waveNumber int) defs.EnemyType {
	switch {
	case waveNumber <= 3:
		return defs.EnemySmall
	case waveNumber <= 6:
		if s.rng.Intn(2) == 0 {
			return defs.EnemySmall
		}
		return defs.EnemyMedium
	default:
		switch bucket := s.rng.Intn(10); {
		case bucket < 4:
			return defs.EnemySmall
		case bucket < 8:
			return defs.EnemyMedium
		default:
			return defs.EnemyLarge
		}
	}
}
