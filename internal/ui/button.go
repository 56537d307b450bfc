// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button is a clickable rectangle with a text label.
type Button struct {
	X, Y, W, H float32
	Label      string
	Disabled   bool

	BgColor       color.RGBA
	HoverColor    color.RGBA
	DisabledColor color.RGBA
	TextColor     color.RGBA
	Font          font.Face
}

func NewButton(x, y, w, h float32, label string, fontFace font.Face, bg, hover, disabled, textColor color.RGBA) *Button {
	return &Button{
		X: x, Y: y, W: w, H: h,
		Label:         label,
		BgColor:       bg,
		HoverColor:    hover,
		DisabledColor: disabled,
		TextColor:     textColor,
		Font:          fontFace,
	}
}

// Contains reports whether the point lies inside the button.
func (b *Button) Contains(mx, my int) bool {
	x, y := float32(mx), float32(my)
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// Draw renders the button, highlighting it under the cursor.
func (b *Button) Draw(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	bg := b.BgColor
	switch {
	case b.Disabled:
		bg = b.DisabledColor
	case b.Contains(mx, my):
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, false)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 1, b.TextColor, false)

	bounds := text.BoundString(b.Font, b.Label)
	tx := int(b.X) + (int(b.W)-bounds.Dx())/2
	ty := int(b.Y) + int(b.H)/2 + 4
	text.Draw(screen, b.Label, b.Font, tx, ty, b.TextColor)
}
