// cmd/game/main.go
package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/state"
)

const maxDeltaTime = 0.1 // clamp long frame stalls so the sim never bursts

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > maxDeltaTime {
		deltaTime = maxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings := config.LoadSettings("settings.yaml")

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, settings.Seed))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(
		int(float64(config.ScreenWidth)*settings.WindowScale),
		int(float64(config.ScreenHeight)*settings.WindowScale),
	)
	ebiten.SetWindowTitle("Grid Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
