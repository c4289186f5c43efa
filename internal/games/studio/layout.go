package studio

import (
	platformcore "github.com/vovakirdan/tile-studio/internal/core"
	"github.com/vovakirdan/tile-studio/internal/games/studio/core"
)

const (
	cellW       = 2 // terminal columns per grid cell
	hudHeight   = 2
	paletteGap  = 2
	paletteW    = 18
	statusLines = 2
)

// paletteLine is one row of the palette panel: a category header
// (idx < 0) or a selectable block.
type paletteLine struct {
	y     int
	idx   int
	label string
}

// layout places the grid box and palette on screen and answers hit tests.
type layout struct {
	box      platformcore.Rect // grid frame including the border
	originX  int               // screen column of cell (0,0)
	originY  int               // screen row of cell (0,0)
	gridW    int
	gridH    int
	paletteX int
	lines    []paletteLine
	tooSmall bool
}

func computeLayout(w, h int, g core.Grid, catalog *core.Catalog) layout {
	l := layout{gridW: g.Width(), gridH: g.Height()}

	l.box = platformcore.NewRect(1, hudHeight, l.gridW*cellW+2, l.gridH+2)
	inner := l.box.Inset(1)
	l.originX = inner.X
	l.originY = inner.Y
	l.paletteX = l.box.Right() + paletteGap

	y := l.box.Y
	l.lines = append(l.lines, paletteLine{y: y, idx: -1, label: "Palette"})
	y++
	l.lines = append(l.lines, paletteLine{y: y, idx: 0, label: "Eraser"})
	y++
	idx := 1
	for _, cat := range catalog.Categories() {
		l.lines = append(l.lines, paletteLine{y: y, idx: -1, label: cat.Name})
		y++
		for _, b := range cat.Blocks {
			l.lines = append(l.lines, paletteLine{y: y, idx: idx, label: b.Name})
			idx++
			y++
		}
	}

	needW := l.paletteX + paletteW
	needH := max(l.box.Bottom(), y) + statusLines
	l.tooSmall = w < needW || h < needH
	return l
}

// CellAt maps a screen position to the grid cell under it.
func (l layout) CellAt(sx, sy int) (core.Coord, bool) {
	if sx < l.originX || sy < l.originY {
		return core.Coord{}, false
	}
	x := (sx - l.originX) / cellW
	y := sy - l.originY
	if x >= l.gridW || y >= l.gridH {
		return core.Coord{}, false
	}
	return core.C(x, y), true
}

// PaletteAt maps a screen position to the palette entry under it.
func (l layout) PaletteAt(sx, sy int) (int, bool) {
	if sx < l.paletteX || sx >= l.paletteX+paletteW {
		return 0, false
	}
	for _, line := range l.lines {
		if line.y == sy && line.idx >= 0 {
			return line.idx, true
		}
	}
	return 0, false
}

// cellScreen returns the screen column and row of cell c.
func (l layout) cellScreen(c core.Coord) (int, int) {
	return l.originX + c.X*cellW, l.originY + c.Y
}
