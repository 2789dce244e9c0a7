package gui

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// Window colours.
var (
	colorBackground = colornames.Darkslategray
	colorHUD        = colornames.Black
	colorCovered    = colornames.Slategray
	colorRevealed   = colornames.Gainsboro
	colorGridLine   = colornames.Dimgray
	colorExploded   = colornames.Crimson
)

// palette maps terminal colours to RGB glyph colours.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       colornames.Black,
	core.ColorRed:           colornames.Firebrick,
	core.ColorGreen:         colornames.Green,
	core.ColorYellow:        colornames.Goldenrod,
	core.ColorBlue:          colornames.Navy,
	core.ColorMagenta:       colornames.Darkmagenta,
	core.ColorCyan:          colornames.Teal,
	core.ColorWhite:         colornames.Whitesmoke,
	core.ColorBrightRed:     colornames.Red,
	core.ColorBrightGreen:   colornames.Limegreen,
	core.ColorBrightYellow:  colornames.Gold,
	core.ColorBrightBlue:    colornames.Blue,
	core.ColorBrightMagenta: colornames.Magenta,
	core.ColorBrightCyan:    colornames.Cyan,
	core.ColorBrightWhite:   colornames.White,
	core.ColorOrange:        colornames.Darkorange,
	core.ColorGray:          colornames.Gray,
	core.ColorDim:           colornames.Darkgray,
}

func rgb(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return colornames.Black
}
