// internal/app/game.go
package app

import (
	"fmt"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/system"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

// Game holds the whole simulation: the entity store, the per-tick systems
// and the player-facing command/query surface. All mutation happens on the
// caller's goroutine, either through a command or through Advance, so ticks
// and commands are naturally serialized.
type Game struct {
	ECS                *entity.ECS
	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	CleanupSystem      *system.CleanupSystem
	VisualEffectSystem *system.VisualEffectSystem
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	Wave               int

	coins           int
	lives           int
	phase           component.GamePhase
	focusedTower    types.EntityID // 0 = none
	selectedType    defs.TowerType
	placing         bool
	status          string
	tickAccumulator float64
}

// NewGame initializes a fresh game. The seed feeds the wave RNG; pass 0
// for a time-based seed.
func NewGame(seed int64) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:                ecs,
		EventDispatcher:    eventDispatcher,
		Rng:                utils.NewPRNGService(seed),
		Wave:               1,
		coins:              config.StartCoins,
		lives:              config.StartLives,
		phase:              component.PhaseIdle,
		selectedType:       defs.TowerArcher,
		status:             "Tap Start to begin",
	}
	g.WaveSystem = system.NewWaveSystem(ecs, g.Rng)
	g.MovementSystem = system.NewMovementSystem(ecs, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs)
	g.CleanupSystem = system.NewCleanupSystem(ecs, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	return g
}

// Advance feeds wall-clock time into the simulation. Whole ticks fire at
// the fixed cadence; a game-over mid-batch stops the remainder.
func (g *Game) Advance(deltaTime float64) {
	if g.phase != component.PhaseRunning {
		return
	}
	g.tickAccumulator += deltaTime
	for g.tickAccumulator >= config.TickSeconds && g.phase == component.PhaseRunning {
		g.tickAccumulator -= config.TickSeconds
		g.Tick()
	}
}

// Tick runs one simulation step in fixed order: spawn, move, attack,
// cleanup, marker decay, wave check, loss check.
func (g *Game) Tick() {
	if g.phase != component.PhaseRunning {
		return
	}

	g.WaveSystem.Update(g.ECS.Wave)

	if escaped := g.MovementSystem.Update(); escaped > 0 {
		g.lives -= escaped
		g.setStatus(fmt.Sprintf("%d slipped through! Lives: %d", escaped, g.Lives()))
	}

	g.CombatSystem.Update()

	if defeated, reward := g.CleanupSystem.Update(); defeated > 0 {
		g.coins += reward
		g.setStatus(fmt.Sprintf("Defeated %d (+%dc)", defeated, reward))
	}

	g.VisualEffectSystem.Update()

	if g.WaveSystem.Cleared(g.ECS.Wave) {
		bonus := config.WaveBonusBase + g.Wave
		g.coins += bonus
		g.setStatus(fmt.Sprintf("Wave %d cleared! +%dc", g.Wave, bonus))
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.WaveEnded,
			Data: event.WavePayload{Number: g.Wave, Bonus: bonus},
		})
		g.Wave++
		g.ECS.Wave = g.WaveSystem.PrepareWave(g.Wave)
	}

	if g.lives <= 0 {
		g.phase = component.PhaseGameOver
		g.tickAccumulator = 0
		cleared := g.Wave - 1
		g.setStatus(fmt.Sprintf("Game over! Waves cleared: %d", cleared))
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.GameOver,
			Data: event.GameOverPayload{WavesCleared: cleared},
		})
	}

	g.notifyChanged()
}

// Start begins or resumes the simulation. Starting after a game over
// resets everything first; starting a fresh game prepares wave 1.
func (g *Game) Start() {
	if g.phase == component.PhaseRunning {
		return
	}
	if g.phase == component.PhaseGameOver {
		g.resetState()
	}
	if g.ECS.Wave == nil {
		g.ECS.Wave = g.WaveSystem.PrepareWave(g.Wave)
	}
	g.phase = component.PhaseRunning
	g.setStatus(fmt.Sprintf("Wave %d incoming!", g.Wave))
	g.notifyChanged()
}

// Pause stops the clock. No-op unless running.
func (g *Game) Pause() {
	if g.phase != component.PhaseRunning {
		return
	}
	g.phase = component.PhasePaused
	g.tickAccumulator = 0
	g.setStatus("Paused")
	g.notifyChanged()
}

// Reset returns the game to its initial state from any phase.
func (g *Game) Reset() {
	g.resetState()
	g.setStatus("New game - place a tower and press Start")
	g.notifyChanged()
}

func (g *Game) resetState() {
	g.ECS.Reset()
	g.Wave = 1
	g.coins = config.StartCoins
	g.lives = config.StartLives
	g.phase = component.PhaseIdle
	g.focusedTower = 0
	g.selectedType = defs.TowerArcher
	g.placing = false
	g.tickAccumulator = 0
}

func (g *Game) setStatus(msg string) {
	g.status = msg
}

// notifyChanged fires the single change notification consumers watch.
func (g *Game) notifyChanged() {
	g.EventDispatcher.Dispatch(event.Event{Type: event.StateChanged})
}

// ---- read-only queries ----

func (g *Game) Coins() int { return g.coins }

// Lives never reports below zero; the internal value may briefly be
// negative in the tick that ends the game.
func (g *Game) Lives() int {
	if g.lives < 0 {
		return 0
	}
	return g.lives
}

func (g *Game) WaveNumber() int              { return g.Wave }
func (g *Game) Phase() component.GamePhase   { return g.phase }
func (g *Game) IsRunning() bool              { return g.phase == component.PhaseRunning }
func (g *Game) IsGameOver() bool             { return g.phase == component.PhaseGameOver }
func (g *Game) IsPlacing() bool              { return g.placing }
func (g *Game) SelectedType() defs.TowerType { return g.selectedType }
func (g *Game) Status() string               { return g.status }

// FocusedTowerID returns the focused tower's id, 0 when none.
func (g *Game) FocusedTowerID() types.EntityID { return g.focusedTower }

// FocusedTower returns the focused tower, nil when none.
func (g *Game) FocusedTower() *component.Tower {
	if g.focusedTower == 0 {
		return nil
	}
	return g.ECS.Towers[g.focusedTower]
}

// TowerLevelAt reports the level of the tower on the cell, if any.
func (g *Game) TowerLevelAt(pos grid.Position) (int, bool) {
	if _, t, ok := g.ECS.TowerAt(pos); ok {
		return t.Level, true
	}
	return 0, false
}

// EnemyHealthAt reports current/max health of the first enemy on the cell.
func (g *Game) EnemyHealthAt(pos grid.Position) (health, maxHealth int, ok bool) {
	if _, e, found := g.ECS.EnemyAt(pos); found {
		return e.Health, e.MaxHealth, true
	}
	return 0, 0, false
}

// HitMarkerAt reports whether a hit flash is active on the cell.
func (g *Game) HitMarkerAt(pos grid.Position) bool {
	return g.ECS.HitMarks[pos] > 0
}

// TileSymbol renders one cell as a single character, for tooltips and
// terminal dumps: hit flash, enemy, tower, path, empty.
func (g *Game) TileSymbol(pos grid.Position) string {
	if g.HitMarkerAt(pos) {
		return "*"
	}
	if _, e, ok := g.ECS.EnemyAt(pos); ok {
		return defs.EnemyLibrary[e.DefID].Visuals.Symbol
	}
	if _, t, ok := g.ECS.TowerAt(pos); ok {
		return defs.TowerLibrary[t.DefID].Visuals.Symbol
	}
	if grid.IsPath(pos) {
		return "."
	}
	return " "
}

// UpgradeLabel returns the text for the upgrade button and whether the
// upgrade is currently affordable.
func (g *Game) UpgradeLabel() (string, bool) {
	t := g.FocusedTower()
	if t == nil {
		return "Upgrade", false
	}
	def := defs.TowerLibrary[t.DefID]
	cost, ok := def.UpgradeCost(t.Level)
	if !ok {
		return "Max level", false
	}
	return fmt.Sprintf("Upgrade (%dc)", cost), cost <= g.coins
}

// FocusedSummary is a one-line description of the focused tower.
func (g *Game) FocusedSummary() string {
	t := g.FocusedTower()
	if t == nil {
		return ""
	}
	def := defs.TowerLibrary[t.DefID]
	stats := def.Stats(t.Level)
	summary := fmt.Sprintf("%s Lv%d  DMG %d  RNG %d  CD %s",
		def.Name, t.Level, stats.Damage, stats.Range, SecondsLabel(stats.CooldownTicks))
	if stats.SlowTicks > 0 {
		summary += fmt.Sprintf("  SLOW %s", SecondsLabel(stats.SlowTicks))
	}
	return summary
}

// HelpText lists the controls.
func (g *Game) HelpText() string {
	return "1/2/3 pick tower  B build  U upgrade  X sell  Space start/pause  R reset"
}

// SecondsLabel converts a tick count into the displayed duration.
func SecondsLabel(ticks int) string {
	return fmt.Sprintf("%.1fs", float64(ticks)*config.TickSeconds)
}
