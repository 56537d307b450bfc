// internal/event/types.go
package event

const (
	StateChanged    EventType = "StateChanged"    // visible state mutated this tick/command
	TowerPlaced     EventType = "TowerPlaced"     // tower built
	TowerRemoved    EventType = "TowerRemoved"    // tower sold
	EnemiesEscaped  EventType = "EnemiesEscaped"  // enemies reached the exit this tick
	EnemiesDefeated EventType = "EnemiesDefeated" // enemies died this tick
	WaveEnded       EventType = "WaveEnded"       // wave fully spawned and cleared
	GameOver        EventType = "GameOver"        // lives ran out
)

// EscapePayload accompanies EnemiesEscaped.
type EscapePayload struct {
	Count int
}

// DefeatPayload accompanies EnemiesDefeated.
type DefeatPayload struct {
	Count  int
	Reward int
}

// WavePayload accompanies WaveEnded.
type WavePayload struct {
	Number int
	Bonus  int
}

// GameOverPayload accompanies GameOver.
type GameOverPayload struct {
	WavesCleared int
}
