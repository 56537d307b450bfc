// pkg/render/grid_renderer.go
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/pkg/grid"
)

// GridRenderer draws the board: cells, path, towers, enemies and hit
// flashes. It only reads game state through the query surface and the
// entity store.
type GridRenderer struct {
	cellSize float64
	offsetX  float64
	offsetY  float64
	colors   *BoardColors
	fontFace font.Face
}

func NewGridRenderer(cellSize, offsetX, offsetY float64, colors *BoardColors, fontFace font.Face) *GridRenderer {
	return &GridRenderer{
		cellSize: cellSize,
		offsetX:  offsetX,
		offsetY:  offsetY,
		colors:   colors,
		fontFace: fontFace,
	}
}

// CellOrigin returns the top-left screen coordinates of a cell.
func (r *GridRenderer) CellOrigin(pos grid.Position) (x, y float64) {
	return r.offsetX + float64(pos.Col)*r.cellSize, r.offsetY + float64(pos.Row)*r.cellSize
}

// ScreenToCell maps a screen point to a board cell.
func (r *GridRenderer) ScreenToCell(sx, sy int) (grid.Position, bool) {
	fx := (float64(sx) - r.offsetX) / r.cellSize
	fy := (float64(sy) - r.offsetY) / r.cellSize
	if fx < 0 || fy < 0 {
		return grid.Position{}, false
	}
	pos := grid.Position{Row: int(fy), Col: int(fx)}
	return pos, grid.Contains(pos)
}

// Draw renders the whole board. When hovering while in build mode the
// hovered cell gets a green/red placement overlay.
func (r *GridRenderer) Draw(screen *ebiten.Image, g *app.Game, hover grid.Position, hasHover bool) {
	cs := float32(r.cellSize)

	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			pos := grid.Position{Row: row, Col: col}
			x, y := r.CellOrigin(pos)
			fill := r.colors.Ground
			if grid.IsPath(pos) {
				fill = r.colors.Path
			}
			vector.DrawFilledRect(screen, float32(x), float32(y), cs, cs, fill, false)
			vector.StrokeRect(screen, float32(x), float32(y), cs, cs, 1, r.colors.GridLine, false)
		}
	}

	for _, id := range g.ECS.TowerIDs() {
		tower := g.ECS.Towers[id]
		def := defs.TowerLibrary[tower.DefID]
		x, y := r.CellOrigin(tower.Pos)
		pad := r.cellSize * 0.18
		side := float32(r.cellSize - 2*pad)
		vector.DrawFilledRect(screen, float32(x+pad), float32(y+pad), side, side, def.Visuals.Color, false)
		if id == g.FocusedTowerID() {
			vector.StrokeRect(screen, float32(x+pad), float32(y+pad), side, side, 2, r.colors.Focus, false)
		}
		// Level pips along the bottom edge.
		pip := float32(r.cellSize * 0.08)
		for l := 0; l < tower.Level; l++ {
			px := float32(x+pad) + float32(l)*(pip+2)
			py := float32(y) + cs - float32(pad)*0.7
			vector.DrawFilledRect(screen, px, py, pip, pip, r.colors.Focus, false)
		}
		text.Draw(screen, def.Visuals.Symbol, r.fontFace, int(x+r.cellSize/2)-3, int(y+r.cellSize/2)+4, DarkenColor(def.Visuals.Color))
	}

	for _, id := range g.ECS.EnemyIDs() {
		enemy := g.ECS.Enemies[id]
		pos, ok := entity.EnemyPosition(enemy)
		if !ok {
			continue
		}
		def := defs.EnemyLibrary[enemy.DefID]
		x, y := r.CellOrigin(pos)
		cx := float32(x + r.cellSize/2)
		cy := float32(y + r.cellSize/2)
		radius := float32(r.cellSize * 0.28)
		vector.DrawFilledCircle(screen, cx, cy, radius, def.Visuals.Color, false)

		// Health bar just above the enemy.
		barW := r.cellSize * 0.6
		barX := float32(x + (r.cellSize-barW)/2)
		barY := cy - radius - 7
		vector.DrawFilledRect(screen, barX, barY, float32(barW), 4, r.colors.HealthBg, false)
		if enemy.MaxHealth > 0 && enemy.Health > 0 {
			frac := float64(enemy.Health) / float64(enemy.MaxHealth)
			vector.DrawFilledRect(screen, barX, barY, float32(barW*frac), 4, r.colors.HealthFg, false)
		}
	}

	for pos := range g.ECS.HitMarks {
		x, y := r.CellOrigin(pos)
		m := float32(r.cellSize * 0.3)
		vector.StrokeCircle(screen, float32(x)+cs/2, float32(y)+cs/2, m, 2, r.colors.HitMark, false)
	}

	if hasHover && g.IsPlacing() {
		x, y := r.CellOrigin(hover)
		overlay := r.colors.PlaceOK
		if !g.ECS.CanPlace(hover) {
			overlay = r.colors.PlaceBad
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), cs, cs, overlay, false)
	}
}
