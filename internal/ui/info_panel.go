// internal/ui/info_panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/config"
)

// InfoPanel shows the economy readouts, the status line and the focused
// tower summary. Pure reads of the game's query surface.
type InfoPanel struct {
	X, Y, W float32
	Font    font.Face
}

func NewInfoPanel(x, y, w float32, fontFace font.Face) *InfoPanel {
	return &InfoPanel{X: x, Y: y, W: w, Font: fontFace}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, g *app.Game) {
	vector.DrawFilledRect(screen, p.X, p.Y, p.W, float32(config.ScreenHeight)-2*p.Y, config.PanelColor, false)

	line := int(p.Y) + 18
	writeLine := func(s string) {
		text.Draw(screen, s, p.Font, int(p.X)+10, line, config.TextLightColor)
		line += 16
	}

	writeLine(fmt.Sprintf("Coins  %d", g.Coins()))
	writeLine(fmt.Sprintf("Lives  %d", g.Lives()))
	writeLine(fmt.Sprintf("Wave   %d", g.WaveNumber()))
	writeLine(fmt.Sprintf("State  %s", g.Phase()))
	line += 8
	writeLine(g.Status())
	line += 8
	if summary := g.FocusedSummary(); summary != "" {
		writeLine(summary)
	}

	text.Draw(screen, g.HelpText(), p.Font, int(p.X)+10, config.ScreenHeight-14, config.TextDimColor)
}
