package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/itwt/space-battle/render"
)

// halfBlock paints the upper half of a cell with fg and the lower half with bg
const halfBlock = '▀'

// toTcell converts RGB to tcell.Color
func toTcell(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// cellStyle packs a vertical pixel pair into one cell style
func cellStyle(top, bottom render.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
}
