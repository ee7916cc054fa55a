package shooter

import (
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Visual characters for rendering
const (
	ShipChar     = '▲'
	ShotChar     = '|'
	ObstacleChar = '■'
)

// Render draws a snapshot into dst.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	switch snap.Phase {
	case PhaseStart:
		drawMenu(dst, "STAR SHOOTER", nil, []string{"1. Start game", "2. Quit"})
	case PhasePlaying:
		drawPlayfield(dst, snap)
	case PhaseGameOver:
		lines := []string{fmt.Sprintf("Score: %d", snap.Score)}
		if snap.Runs > 1 {
			lines = append(lines, fmt.Sprintf("Session best: %d", snap.Best))
		}
		drawMenu(dst, "GAME OVER", lines, []string{"1. Restart", "2. Back to menu"})
	}
}

func drawPlayfield(dst *core.Screen, snap Snapshot) {
	w, h := dst.Width(), dst.Height()

	for _, p := range snap.Obstacles {
		col, row := core.ToCell(p, w, h)
		dst.SetColored(col, row, ObstacleChar, core.ColorBlue)
	}
	for _, p := range snap.Shots {
		col, row := core.ToCell(p, w, h)
		dst.SetColored(col, row, ShotChar, core.ColorRed)
	}
	col, row := core.ToCell(snap.Ship, w, h)
	dst.SetColored(col, row, ShipChar, core.ColorGreen)

	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)
}

// drawMenu draws a boxed menu centred on the screen.
func drawMenu(dst *core.Screen, title string, info, options []string) {
	width := len([]rune(title))
	for _, l := range append(append([]string{}, info...), options...) {
		width = core.Max(width, len([]rune(l)))
	}

	boxW := width + 6
	boxH := 4 + len(options)
	if len(info) > 0 {
		boxH += len(info) + 1
	}
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawBox(box, core.ColorGray)

	y := box.Y + 1
	dst.DrawTextCentered(y, title, core.ColorYellow)
	y += 2
	for _, l := range info {
		dst.DrawTextCentered(y, l, core.ColorDefault)
		y++
	}
	if len(info) > 0 {
		y++
	}
	for _, l := range options {
		dst.DrawText(box.X+3, y, l)
		y++
	}
}
