// internal/state/game_state.go
package state

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/ui"
	"go-grid-defense/pkg/render"
)

// GameState is the playing screen: it feeds wall-clock time into the
// simulation and translates clicks/keys into commands. All game state is
// read back through queries.
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	renderer      *render.GridRenderer
	infoPanel     *ui.InfoPanel
	paletteBtns   []*ui.Button
	buildBtn      *ui.Button
	startBtn      *ui.Button
	resetBtn      *ui.Button
	upgradeBtn    *ui.Button
	removeBtn     *ui.Button
	fontFace      font.Face
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, seed int64) *GameState {
	gameLogic := app.NewGame(seed)
	fontFace := basicfont.Face7x13

	colors := &render.BoardColors{
		Ground:   config.GroundColor,
		Path:     config.PathColor,
		GridLine: config.GridLineColor,
		Focus:    config.FocusColor,
		HitMark:  config.HitMarkColor,
		PlaceOK:  config.PlacingOKColor,
		PlaceBad: config.PlacingBadColor,
		HealthBg: config.HealthBackColor,
		HealthFg: config.HealthFillColor,
	}
	renderer := render.NewGridRenderer(config.CellSize, config.BoardOffsetX, config.BoardOffsetY, colors, fontFace)
	infoPanel := ui.NewInfoPanel(config.PanelX, config.BoardOffsetY, config.PanelWidth, fontFace)

	gs := &GameState{
		sm:        sm,
		game:      gameLogic,
		renderer:  renderer,
		infoPanel: infoPanel,
		fontFace:  fontFace,
	}
	gs.initButtons()

	listener := &gameEventLogger{}
	gameLogic.EventDispatcher.Subscribe(event.WaveEnded, listener)
	gameLogic.EventDispatcher.Subscribe(event.GameOver, listener)
	return gs
}

func (s *GameState) initButtons() {
	newBtn := func(x, y, w float32, label string) *ui.Button {
		return ui.NewButton(x, y, w, config.ButtonH, label, s.fontFace,
			config.ButtonColor, config.ButtonHoverColor, config.ButtonDisabledColor, config.TextLightColor)
	}

	x := float32(config.PanelX) + 10
	w := float32(config.PanelWidth) - 20
	y := float32(200)
	for _, id := range defs.TowerOrder {
		def := defs.TowerLibrary[id]
		s.paletteBtns = append(s.paletteBtns, newBtn(x, y, w, fmt.Sprintf("%s (%dc)", def.Name, def.Cost)))
		y += config.ButtonH + config.ButtonGap
	}
	y += config.ButtonGap
	s.buildBtn = newBtn(x, y, w, "Build")
	y += config.ButtonH + config.ButtonGap
	s.upgradeBtn = newBtn(x, y, w, "Upgrade")
	y += config.ButtonH + config.ButtonGap
	s.removeBtn = newBtn(x, y, w, "Sell")
	y += config.ButtonH + 2*config.ButtonGap
	s.startBtn = newBtn(x, y, w, "Start")
	y += config.ButtonH + config.ButtonGap
	s.resetBtn = newBtn(x, y, w, "Reset")
}

func (s *GameState) Enter() {}
func (s *GameState) Exit()  {}

func (s *GameState) Update(deltaTime float64) {
	s.handleKeys()
	s.handleMouse()
	s.game.Advance(deltaTime)
	s.refreshButtonLabels()
}

func (s *GameState) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		s.game.SelectTowerType(defs.TowerArcher)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		s.game.SelectTowerType(defs.TowerFrost)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		s.game.SelectTowerType(defs.TowerBlaze)
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		s.game.TogglePlacement()
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		s.game.UpgradeFocused()
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		s.game.RemoveFocused()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if s.game.IsRunning() {
			s.game.Pause()
		} else {
			s.game.Start()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.game.Reset()
	}
}

func (s *GameState) handleMouse() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if time.Since(s.lastClickTime) < config.ClickDebounceTime*time.Millisecond {
		return
	}
	s.lastClickTime = time.Now()

	mx, my := ebiten.CursorPosition()

	for i, btn := range s.paletteBtns {
		if btn.Contains(mx, my) {
			s.game.SelectTowerType(defs.TowerOrder[i])
			if !s.game.IsPlacing() {
				s.game.TogglePlacement()
			}
			return
		}
	}
	switch {
	case s.buildBtn.Contains(mx, my):
		s.game.TogglePlacement()
	case s.upgradeBtn.Contains(mx, my):
		s.game.UpgradeFocused()
	case s.removeBtn.Contains(mx, my):
		s.game.RemoveFocused()
	case s.startBtn.Contains(mx, my):
		if s.game.IsRunning() {
			s.game.Pause()
		} else {
			s.game.Start()
		}
	case s.resetBtn.Contains(mx, my):
		s.game.Reset()
	default:
		if cell, ok := s.renderer.ScreenToCell(mx, my); ok {
			if s.game.IsPlacing() {
				s.game.PlaceTower(cell)
			} else {
				s.game.Inspect(cell)
			}
		}
	}
}

func (s *GameState) refreshButtonLabels() {
	if s.game.IsPlacing() {
		s.buildBtn.Label = "Cancel build"
	} else {
		s.buildBtn.Label = "Build"
	}
	label, affordable := s.game.UpgradeLabel()
	s.upgradeBtn.Label = label
	s.upgradeBtn.Disabled = !affordable
	s.removeBtn.Disabled = s.game.FocusedTower() == nil
	if s.game.IsRunning() {
		s.startBtn.Label = "Pause"
	} else if s.game.IsGameOver() {
		s.startBtn.Label = "Restart"
	} else {
		s.startBtn.Label = "Start"
	}
}

func (s *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	mx, my := ebiten.CursorPosition()
	hover, hasHover := s.renderer.ScreenToCell(mx, my)
	s.renderer.Draw(screen, s.game, hover, hasHover)

	s.infoPanel.Draw(screen, s.game)
	for _, btn := range s.paletteBtns {
		btn.Draw(screen)
	}
	s.buildBtn.Draw(screen)
	s.upgradeBtn.Draw(screen)
	s.removeBtn.Draw(screen)
	s.startBtn.Draw(screen)
	s.resetBtn.Draw(screen)
}

// gameEventLogger writes wave milestones to the process log.
type gameEventLogger struct{}

func (l *gameEventLogger) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveEnded:
		if p, ok := e.Data.(event.WavePayload); ok {
			log.Printf("wave %d cleared (+%dc)", p.Number, p.Bonus)
		}
	case event.GameOver:
		if p, ok := e.Data.(event.GameOverPayload); ok {
			log.Printf("game over after %d cleared waves", p.WavesCleared)
		}
	}
}
