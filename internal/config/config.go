// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 640
	ScreenHeight = 560
	CellSize     = 68.0
	BoardOffsetX = 24.0
	BoardOffsetY = 24.0

	PanelX     = 392.0
	PanelWidth = 224.0
	ButtonH    = 30.0
	ButtonGap  = 8.0

	ClickDebounceTime = 150 // ms

	// One simulation tick per 0.6s of game time. Cooldown and slow
	// durations shown to the player are ticks times this constant.
	TickSeconds = 0.6

	StartCoins = 8
	StartLives = 10

	KillReward              = 2
	WaveBonusBase           = 3
	EnemiesPerWave          = 5
	EnemiesIncrementPerWave = 2
	InitialSpawnInterval    = 4 // ticks between spawns on wave 1
	MinSpawnInterval        = 1

	HitMarkerTTL = 3 // ticks a hit flash stays on a cell

	RefundRate = 0.6 // share of invested coins returned on removal
)

var (
	BackgroundColor     = color.RGBA{20, 20, 30, 255}
	GroundColor         = color.RGBA{46, 62, 48, 255}
	PathColor           = color.RGBA{120, 100, 70, 255}
	GridLineColor       = color.RGBA{30, 34, 40, 255}
	PanelColor          = color.RGBA{28, 30, 40, 255}
	TextLightColor      = color.RGBA{240, 240, 240, 255}
	TextDimColor        = color.RGBA{150, 150, 160, 255}
	FocusColor          = color.RGBA{255, 215, 0, 255}
	PlacingOKColor      = color.RGBA{80, 220, 100, 140}
	PlacingBadColor     = color.RGBA{220, 70, 70, 140}
	HitMarkColor        = color.RGBA{255, 240, 120, 220}
	HealthBackColor     = color.RGBA{60, 20, 20, 255}
	HealthFillColor     = color.RGBA{60, 200, 60, 255}
	ButtonColor         = color.RGBA{52, 58, 76, 255}
	ButtonHoverColor    = color.RGBA{72, 80, 104, 255}
	ButtonDisabledColor = color.RGBA{40, 42, 50, 255}
)
