package tile

import "image/color"

// xtermSystem are the 16 system colours in the common xterm defaults
var xtermSystem = [16]color.RGBA{
	{0, 0, 0, 255},
	{205, 0, 0, 255},
	{0, 205, 0, 255},
	{205, 205, 0, 255},
	{0, 0, 238, 255},
	{205, 0, 205, 255},
	{0, 205, 205, 255},
	{229, 229, 229, 255},
	{127, 127, 127, 255},
	{255, 0, 0, 255},
	{0, 255, 0, 255},
	{255, 255, 0, 255},
	{92, 92, 255, 255},
	{255, 0, 255, 255},
	{0, 255, 255, 255},
	{255, 255, 255, 255},
}

// cubeLevels are the channel values of the 6x6x6 colour cube
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// Xterm converts an xterm-256 colour index to RGBA
func Xterm(i uint8) color.RGBA {
	switch {
	case i < 16:
		return xtermSystem[i]
	case i < 232:
		c := i - 16
		return color.RGBA{cubeLevels[c/36], cubeLevels[(c/6)%6], cubeLevels[c%6], 255}
	default:
		v := 8 + 10*(i-232)
		return color.RGBA{v, v, v, 255}
	}
}
