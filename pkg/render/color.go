// pkg/render/color.go
package render

import "image/color"

// BoardColors holds the color set needed to draw the board.
type BoardColors struct {
	Ground    color.RGBA
	Path      color.RGBA
	GridLine  color.RGBA
	Focus     color.RGBA
	HitMark   color.RGBA
	PlaceOK   color.RGBA
	PlaceBad  color.RGBA
	HealthBg  color.RGBA
	HealthFg  color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
