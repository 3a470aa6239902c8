package t2048

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ctrl == nil {
		return
	}

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	side := g.ctrl.Grid().Side()
	boardW := side*cellWidth + 1  // +1 for right border
	boardH := side*cellHeight + 1 // +1 for bottom border

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderGrid(dst, side, boardX, boardY)
	g.renderTiles(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and best score.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	side := g.ctrl.Grid().Side()
	title := fmt.Sprintf("2048  %dx%d", side, side)
	dst.DrawText(boardX+(boardW-utf8.RuneCountInString(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.ctrl.Score()))

	best := fmt.Sprintf("Best: %d", g.ctrl.Best())
	bestX := max(boardX+boardW-len(best), boardX)
	dst.DrawText(bestX, 1, best)

	moves := fmt.Sprintf("Moves: %d", g.ctrl.Moves())
	dst.DrawText(boardX+(boardW-len(moves))/2, 2, moves)
}

// renderGrid draws the cell borders.
func (g *Game) renderGrid(dst *core.Screen, side, boardX, boardY int) {
	dst.SetPen(core.ColorGray)
	defer dst.SetPen(core.ColorDefault)

	for y := range side + 1 {
		for x := range side + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight
			dst.Set(px, py, gridJoint(x, y, side))

			// Horizontal line to the right
			if x < side {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}

			// Vertical line down
			if y < side {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}
}

func gridJoint(x, y, side int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == side:
		return '┐'
	case y == side && x == 0:
		return '└'
	case y == side && x == side:
		return '┘'
	case y == 0:
		return '┬'
	case y == side:
		return '┴'
	case x == 0:
		return '├'
	case x == side:
		return '┤'
	default:
		return '┼'
	}
}

// renderTiles draws every sprite at its animated position.
func (g *Game) renderTiles(dst *core.Screen, boardX, boardY int) {
	defer dst.SetPen(core.ColorDefault)

	for _, s := range g.anim.Sprites() {
		x := boardX + int(math.Round(s.Col*cellWidth)) + 1
		y := boardY + int(math.Round(s.Row*cellHeight)) + 1

		label := strconv.Itoa(s.Value)
		switch {
		case s.Kind == AnimSpawn && s.Progress < 0.5:
			label = "·"
		case s.Kind == AnimMerge && s.Progress < 1:
			label = "*" + label + "*"
		}

		inner := cellWidth - 1
		pad := max((inner-utf8.RuneCountInString(label))/2, 0)
		dst.SetPen(core.TileColor(s.Value))
		dst.DrawText(x+pad, y, label)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX, centerY := core.NewRect(boardX, boardY, boardW, boardH).Center()

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, core.ColorCyan, "PAUSED", "Press P to resume")
		return
	}

	if g.ctrl.GameOver() {
		score := fmt.Sprintf("Score: %d", g.ctrl.Score())
		if g.ctrl.NewRecord() {
			g.drawOverlay(dst, centerX, centerY, core.ColorBrightYellow, "NEW RECORD!", score, "Press R to restart")
			return
		}
		g.drawOverlay(dst, centerX, centerY, core.ColorRed, "TRY AGAIN!", score, "Press R to restart")
	}
}

// drawOverlay draws a centered, bordered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	box := core.NewRect(boxX, boxY, boxW, boxH)

	// Clear area behind overlay
	dst.SetPen(core.ColorDefault)
	dst.DrawRect(box, ' ')

	dst.SetPen(color)
	defer dst.SetPen(core.ColorDefault)
	dst.DrawBox(box)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | R: Restart | Q: Quit"
}
