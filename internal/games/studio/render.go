package studio

import (
	"fmt"

	platformcore "github.com/vovakirdan/tile-studio/internal/core"
	"github.com/vovakirdan/tile-studio/internal/games/studio/core"
)

// Visual characters for rendering
const (
	ActorChar = '@'
	EmptyChar = '·'
)

// glyph is how one render class looks on screen.
type glyph struct {
	left  rune
	right rune
	color platformcore.Color
}

var glyphs = map[string]glyph{
	"wall":   {'█', '█', platformcore.ColorGray},
	"water":  {'≈', '≈', platformcore.ColorBlue},
	"grass":  {'"', '"', platformcore.ColorGreen},
	"door":   {'[', ']', platformcore.ColorBrown},
	"key":    {'k', ' ', platformcore.ColorYellow},
	"coin":   {'o', ' ', platformcore.ColorBrightYellow},
	"gem":    {'◆', ' ', platformcore.ColorBrightCyan},
	"ground": {'▀', '▀', platformcore.ColorBrown},
}

// glyphFor returns the glyph of a cell; unknown classes use the block's initial.
func glyphFor(c core.Cell) glyph {
	if c.IsEmpty() {
		return glyph{EmptyChar, ' ', platformcore.ColorGray}
	}
	if gl, ok := glyphs[c.RenderClass]; ok {
		return gl
	}
	r := '?'
	for _, ch := range c.Properties.Name {
		r = ch
		break
	}
	return glyph{r, ' ', platformcore.ColorWhite}
}

// Render draws the studio.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.layout.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small")
		need := fmt.Sprintf("need %dx%d", g.layout.paletteX+paletteW, g.layout.box.Bottom()+statusLines)
		dst.DrawTextCentered(dst.Height()/2, need)
		return
	}

	g.drawHUD(dst)
	g.drawGrid(dst)
	g.drawPalette(dst)
	g.drawStatus(dst)

	if g.studio.GameOver() {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Tab to edit", g.studio.Actor().Score))
	}
}

func (g *Game) drawHUD(dst *platformcore.Screen) {
	dst.DrawTextWithColor(1, 0, g.title, platformcore.ColorBrightWhite)

	mode := "EDIT"
	button := "[Tab] Play"
	if g.studio.Mode() == core.ModePlay {
		mode = "PLAY"
		button = "[Tab] Edit"
	}
	a := g.studio.Actor()
	stats := fmt.Sprintf("%s  Lives: %d  Score: %d  %s", mode, a.Lives, a.Score, button)
	dst.DrawText(dst.Width()-len([]rune(stats))-1, 0, stats)
}

func (g *Game) drawGrid(dst *platformcore.Screen) {
	l := g.layout
	dst.DrawBox(l.box, platformcore.ColorGray)

	grid := g.studio.Grid()
	edit := g.studio.Mode() == core.ModeEdit
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			c := core.C(x, y)
			gl := glyphFor(grid.At(c))
			if edit && c == g.cursor {
				gl.color = platformcore.ColorCursor
			}
			sx, sy := l.cellScreen(c)
			dst.SetWithColor(sx, sy, gl.left, gl.color)
			dst.SetWithColor(sx+1, sy, gl.right, gl.color)
		}
	}

	if !edit {
		sx, sy := l.cellScreen(g.studio.Actor().Pos)
		dst.SetWithColor(sx, sy, ActorChar, platformcore.ColorBrightWhite)
	}
}

func (g *Game) drawPalette(dst *platformcore.Screen) {
	l := g.layout
	edit := g.studio.Mode() == core.ModeEdit

	for _, line := range l.lines {
		if line.idx < 0 {
			dst.DrawTextWithColor(l.paletteX, line.y, line.label, platformcore.ColorBrightWhite)
			continue
		}

		color := platformcore.ColorDefault
		if !edit {
			color = platformcore.ColorDim
		}
		marker := "  "
		if line.idx == g.paletteIdx {
			marker = "> "
			if edit {
				color = platformcore.ColorBrightYellow
			}
		}
		slot := " "
		if line.idx < 9 {
			slot = fmt.Sprintf("%d", line.idx+1)
		}

		gl := glyph{EmptyChar, ' ', platformcore.ColorGray}
		if line.idx > 0 {
			gl = glyphFor(core.CellFor(g.palette[line.idx]))
		}
		x := l.paletteX
		dst.DrawTextWithColor(x, line.y, marker+slot+" ", color)
		dst.SetWithColor(x+4, line.y, gl.left, gl.color)
		dst.SetWithColor(x+5, line.y, gl.right, gl.color)
		dst.DrawTextWithColor(x+7, line.y, line.label, color)
	}
}

func (g *Game) drawStatus(dst *platformcore.Screen) {
	y := max(g.layout.box.Bottom(), g.layout.lines[len(g.layout.lines)-1].y+1)
	if g.studio.Mode() == core.ModeEdit {
		pos := fmt.Sprintf("Cursor: row %d, column %d", g.cursor.Y+1, g.cursor.X+1)
		dst.DrawTextWithColor(1, y, pos, platformcore.ColorGray)
	}
	dst.DrawText(1, y+1, g.status)
}

// drawCenteredMessage draws a boxed message over the grid.
func (g *Game) drawCenteredMessage(dst *platformcore.Screen, title, subtitle string) {
	w := max(len([]rune(title)), len([]rune(subtitle))) + 4
	box := g.layout.box.CenteredIn(w, 4)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, platformcore.ColorBrightRed)
	dst.DrawTextWithColor(box.X+(w-len([]rune(title)))/2, box.Y+1, title, platformcore.ColorBrightRed)
	dst.DrawText(box.X+(w-len([]rune(subtitle)))/2, box.Y+2, subtitle)
}
