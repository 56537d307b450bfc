// internal/component/enemy.go
package component

import "go-grid-defense/internal/defs"

// Enemy represents a hostile walker on the path.
type Enemy struct {
	DefID     defs.EnemyType
	PathIndex int // -1 before entering the path; >= path length means escaped
	Health    int // may go negative transiently until cleanup runs
	MaxHealth int // fixed at spawn
	SlowTicks int // remaining ticks the enemy stands still
}
