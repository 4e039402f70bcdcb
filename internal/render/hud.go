package render

import (
	"fmt"

	"red-rockit/internal/player"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// StatusLine formats the debug readout shared by both front-ends.
func StatusLine(p *player.Player, cam Camera, speed string) string {
	return fmt.Sprintf("pos %d,%d  vel %+d,%+d  facing %s  frame %d  cam %d,%d  %s",
		p.Box.X, p.Box.Y, p.VelX, p.VelY, p.Heading, p.Frame, cam.X, cam.Y, speed)
}

// DrawHUD renders the status and help lines below the map and shows the frame.
func (r *Renderer) DrawHUD(p *player.Player, speed string) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDRows

	r.drawHLine(hudY, tcell.ColorGray)

	arrow := headingArrows[p.Heading]
	r.screen.SetContent(0, hudY+1, arrow, nil, styleHUD)
	r.drawText(2, hudY+1, StatusLine(p, *r.camera, speed), styleHUD)
	r.drawText(0, hudY+2, "arrows/WASD move   q/Esc quit", styleHelp)

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
