// internal/app/tower_management.go
package app

import (
	"fmt"
	"log"
	"math"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/event"
	"go-grid-defense/pkg/grid"
)

// SelectTowerType picks the tower kind for the next placement. Free.
func (g *Game) SelectTowerType(t defs.TowerType) {
	if g.phase == component.PhaseGameOver {
		return
	}
	def, ok := defs.TowerLibrary[t]
	if !ok {
		log.Printf("SelectTowerType: unknown tower type %s", t)
		return
	}
	g.selectedType = t
	g.setStatus(fmt.Sprintf("Selected %s (%dc)", def.Name, def.Cost))
	g.notifyChanged()
}

// TogglePlacement enters or leaves build mode. Entering requires enough
// coins for the selected type.
func (g *Game) TogglePlacement() {
	if g.phase == component.PhaseGameOver {
		return
	}
	if g.placing {
		g.placing = false
		g.setStatus("Build mode off")
		g.notifyChanged()
		return
	}
	def := defs.TowerLibrary[g.selectedType]
	if g.coins < def.Cost {
		g.setStatus(fmt.Sprintf("Not enough coins for %s (%dc)", def.Name, def.Cost))
		g.notifyChanged()
		return
	}
	g.placing = true
	g.setStatus(fmt.Sprintf("Placing %s - tap a free cell", def.Name))
	g.notifyChanged()
}

// PlaceTower builds the selected tower on the cell. Only valid while in
// build mode; a funds failure leaves build mode, an invalid cell does not.
func (g *Game) PlaceTower(pos grid.Position) {
	if g.phase == component.PhaseGameOver || !g.placing {
		return
	}
	def := defs.TowerLibrary[g.selectedType]
	if g.coins < def.Cost {
		g.placing = false
		g.setStatus(fmt.Sprintf("Not enough coins for %s (%dc)", def.Name, def.Cost))
		g.notifyChanged()
		return
	}
	if !g.ECS.CanPlace(pos) {
		g.setStatus("Can't build there")
		g.notifyChanged()
		return
	}

	g.coins -= def.Cost
	id := g.ECS.NewEntity()
	g.ECS.Towers[id] = &component.Tower{DefID: def.ID, Pos: pos, Level: 1}
	g.focusedTower = id
	g.placing = false
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	g.setStatus(fmt.Sprintf("%s built (-%dc)", def.Name, def.Cost))
	g.notifyChanged()
}

// UpgradeFocused raises the focused tower one level for its upgrade cost.
func (g *Game) UpgradeFocused() {
	if g.phase == component.PhaseGameOver {
		return
	}
	t := g.FocusedTower()
	if t == nil {
		g.setStatus("No tower selected")
		g.notifyChanged()
		return
	}
	def := defs.TowerLibrary[t.DefID]
	cost, ok := def.UpgradeCost(t.Level)
	if !ok {
		g.setStatus(fmt.Sprintf("%s is already max level", def.Name))
		g.notifyChanged()
		return
	}
	if g.coins < cost {
		g.setStatus(fmt.Sprintf("Upgrade needs %dc", cost))
		g.notifyChanged()
		return
	}
	g.coins -= cost
	t.Level++
	g.setStatus(fmt.Sprintf("%s upgraded to Lv%d (-%dc)", def.Name, t.Level, cost))
	g.notifyChanged()
}

// RemoveFocused sells the focused tower, refunding a share of everything
// spent on it.
func (g *Game) RemoveFocused() {
	if g.phase == component.PhaseGameOver {
		return
	}
	t := g.FocusedTower()
	if t == nil {
		g.setStatus("No tower selected")
		g.notifyChanged()
		return
	}
	def := defs.TowerLibrary[t.DefID]
	refund := int(math.Floor(config.RefundRate * float64(def.InvestedCost(t.Level))))
	g.coins += refund
	delete(g.ECS.Towers, g.focusedTower)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerRemoved, Data: g.focusedTower})
	g.focusedTower = 0
	g.setStatus(fmt.Sprintf("%s sold (+%dc)", def.Name, refund))
	g.notifyChanged()
}

// Inspect reports what occupies the cell, focusing a tower when one is
// there. It is the only command besides placement that moves focus.
func (g *Game) Inspect(pos grid.Position) {
	if g.phase == component.PhaseGameOver {
		return
	}
	if id, _, ok := g.ECS.TowerAt(pos); ok {
		g.focusedTower = id
		g.setStatus(g.FocusedSummary())
		g.notifyChanged()
		return
	}
	if _, e, ok := g.ECS.EnemyAt(pos); ok {
		def := defs.EnemyLibrary[e.DefID]
		g.setStatus(fmt.Sprintf("%s  %d/%d HP", def.Name, e.Health, e.MaxHealth))
		g.notifyChanged()
		return
	}
	g.focusedTower = 0
	if grid.IsPath(pos) {
		g.setStatus("Enemy path - can't build here")
	} else {
		g.setStatus("Empty cell")
	}
	g.notifyChanged()
}
