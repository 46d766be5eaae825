package core

import "image/color"

// Color is a palette index shared by every frontend.
// The terminal maps it to an ANSI code; the window maps it to RGBA.
type Color uint8

// Predefined colors for scene elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
)

var palette = [...]color.RGBA{
	ColorDefault:       {0xdd, 0xdd, 0xdd, 0xff},
	ColorRed:           {0xcc, 0x33, 0x33, 0xff},
	ColorGreen:         {0x33, 0xaa, 0x44, 0xff},
	ColorYellow:        {0xcc, 0xaa, 0x22, 0xff},
	ColorBlue:          {0x33, 0x55, 0xcc, 0xff},
	ColorMagenta:       {0xaa, 0x33, 0xaa, 0xff},
	ColorCyan:          {0x33, 0xaa, 0xaa, 0xff},
	ColorWhite:         {0xee, 0xee, 0xee, 0xff},
	ColorBrightRed:     {0xff, 0x44, 0x44, 0xff},
	ColorBrightGreen:   {0x55, 0xff, 0x55, 0xff},
	ColorBrightYellow:  {0xff, 0xff, 0x55, 0xff},
	ColorBrightBlue:    {0x55, 0x77, 0xff, 0xff},
	ColorBrightMagenta: {0xff, 0x55, 0xff, 0xff},
	ColorBrightCyan:    {0x55, 0xff, 0xff, 0xff},
	ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	ColorOrange:        {0xff, 0x99, 0x22, 0xff},
	ColorGray:          {0x80, 0x80, 0x80, 0xff},
	ColorBlack:         {0x00, 0x00, 0x00, 0xff},
}

// RGBA returns the color for raster frontends.
func (c Color) RGBA() color.RGBA {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[ColorDefault]
}
