package tetris

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// Layout constants. Each board cell is drawn two characters wide so that
// blocks look square in a terminal.
const (
	cellWidth  = 2
	panelGap   = 2
	panelWidth = 14
)

const blockGlyph = "██"

func boardWidth(cols int) int {
	return cols*cellWidth + 2
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.engine.Snapshot()

	// Center the board and side panel as a single block.
	totalW := boardWidth(g.rules.Cols) + panelGap + panelWidth
	originX := (dst.Width() - totalW) / 2
	originY := (dst.Height() - (g.rules.Rows + 2)) / 2
	if originX < 0 {
		originX = 0
	}
	if originY < 0 {
		originY = 0
	}

	g.renderBoard(dst, snap, originX, originY)
	g.renderPanel(dst, snap, originX+boardWidth(g.rules.Cols)+panelGap, originY)

	switch {
	case snap.Status == core.StatusGameOver:
		g.renderOverlay(dst, "GAME OVER", fmt.Sprintf("Score: %d", snap.Score), "R restart  Q quit")
	case g.paused:
		g.renderOverlay(dst, "PAUSED", "P to continue")
	}
}

// renderBoard draws the well, the locked cells and the falling piece.
func (g *Game) renderBoard(dst *platformcore.Screen, snap core.Snapshot, ox, oy int) {
	frame := platformcore.NewRect(ox, oy, boardWidth(g.rules.Cols), g.rules.Rows+2)
	dst.DrawBox(frame, platformcore.ColorGray)

	for y, row := range snap.Board {
		for x, v := range row {
			if v == core.Empty {
				dst.DrawTextColored(ox+1+x*cellWidth, oy+1+y, " .", platformcore.ColorGray)
				continue
			}
			dst.DrawTextColored(ox+1+x*cellWidth, oy+1+y, blockGlyph, g.color(v))
		}
	}

	if snap.Status != core.StatusRunning {
		return
	}
	snap.Active.Cells(func(x, y, v int) {
		if y < 0 || y >= g.rules.Rows || x < 0 || x >= g.rules.Cols {
			return
		}
		dst.DrawTextColored(ox+1+x*cellWidth, oy+1+y, blockGlyph, g.color(v))
	})
}

// renderPanel draws the next piece preview, the counters and the controls.
func (g *Game) renderPanel(dst *platformcore.Screen, snap core.Snapshot, px, py int) {
	dst.DrawText(px, py, "NEXT")
	preview := platformcore.NewRect(px, py+1, 4*cellWidth+2, 6)
	dst.DrawBox(preview, platformcore.ColorGray)
	if snap.Next.Shape != nil {
		size := snap.Next.Shape.Size()
		offX := (4 - size) / 2
		offY := (4 - size) / 2
		for y, row := range snap.Next.Shape {
			for x, v := range row {
				if v == core.Empty {
					continue
				}
				dst.DrawTextColored(px+1+(offX+x)*cellWidth, py+2+offY+y, blockGlyph, g.color(v))
			}
		}
	}

	y := py + 8
	dst.DrawText(px, y, fmt.Sprintf("Score %d", snap.Score))
	dst.DrawText(px, y+1, fmt.Sprintf("Level %d", snap.Level))
	dst.DrawText(px, y+2, fmt.Sprintf("Lines %d", snap.LinesCleared))

	controls := []string{
		"←→  move",
		"↑   rotate",
		"↓   soft drop",
		"spc hard drop",
		"p   pause",
		"esc give up",
	}
	for i, line := range controls {
		dst.DrawTextColored(px, y+4+i, line, platformcore.ColorGray)
	}
}

// renderOverlay draws a boxed message centered on the screen.
func (g *Game) renderOverlay(dst *platformcore.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > maxLen {
			maxLen = n
		}
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := platformcore.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, platformcore.ColorBrightWhite)
	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		c := platformcore.ColorDefault
		if i == 0 {
			c = platformcore.ColorBrightRed
		}
		dst.DrawTextColored(x, box.Y+1+i, l, c)
	}
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	minW := boardWidth(g.rules.Cols) + panelGap + panelWidth
	minH := g.rules.Rows + 2
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Window too small")
	dst.DrawTextCentered(mid, fmt.Sprintf("need %dx%d", minW, minH))
}

// color maps a cell value to its configured color.
func (g *Game) color(v int) platformcore.Color {
	if v < 0 || v >= len(g.colors) {
		return platformcore.ColorDefault
	}
	return g.colors[v]
}
