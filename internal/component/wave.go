// internal/component/wave.go
package component

// Wave tracks the progress of the current enemy wave.
type Wave struct {
	Number         int
	EnemiesToSpawn int
	Spawned        int
	SpawnInterval  int // ticks between spawns
	TickCount      int // ticks elapsed since the wave was prepared
}
