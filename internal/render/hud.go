package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"dungeongen/internal/gamemap"
	"dungeongen/internal/mapdump"
)

// HelpLine lists the viewer keys.
const HelpLine = "n/p level  N/P branch  r reseed  arrows pan  m mode  v sight  q quit"

// DrawHUD renders the status lines under the map and shows the screen.
// status is an extra caller-supplied line such as the seed.
func (r *Renderer) DrawHUD(lvl *gamemap.Level, status string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawText(0, hudY, mapdump.Header(lvl), tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	info := status
	if flags := mapdump.NewView(lvl).Flags; len(flags) > 0 {
		info += "  " + strings.Join(flags, " ")
	}
	info += fmt.Sprintf("  traps %d  %s", len(lvl.Traps), r.mode)
	r.drawText(0, hudY+1, strings.TrimLeft(info, " "), tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	r.drawText(0, hudY+2, HelpLine, tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// DrawMessage clears the screen and centres msg on it.
func (r *Renderer) DrawMessage(msg string) {
	r.screen.Clear()
	w, h := r.screen.Size()
	r.drawText(max((w-len(msg))/2, 0), h/2, msg, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	r.screen.Show()
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
