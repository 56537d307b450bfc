// internal/component/tower.go
package component

import (
	"go-grid-defense/internal/defs"
	"go-grid-defense/pkg/grid"
)

// Tower is a placed tower. Its position never changes after placement.
type Tower struct {
	DefID    defs.TowerType
	Pos      grid.Position
	Level    int // 1..MaxLevel
	Cooldown int // ticks until the tower may fire again
}
