package main

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivierh59500/nbody-trails/physics"
)

var (
	sunColor  = colorful.Color{R: 1, G: 0.85, B: 0.3}
	freeColor = colorful.Color{R: 1, G: 1, B: 1}
)

// trailAlpha keeps trails behind the bodies that draw them.
const trailAlpha = 0xa0

// bodyColor returns the fill color of the body at index i.
func bodyColor(b *physics.Body, i int) color.Color {
	switch b.Category {
	case physics.Sun:
		return sunColor
	case physics.Planet:
		return planetColor(i)
	default:
		return freeColor
	}
}

// planetColor spreads planets around the HCL hue circle by golden angle.
func planetColor(i int) colorful.Color {
	h := math.Mod(float64(i)*137.508, 360)
	return colorful.Hcl(h, 0.55, 0.75).Clamped()
}

func trailColor(b *physics.Body, i int) color.RGBA {
	c, ok := bodyColor(b, i).(colorful.Color)
	if !ok {
		c = freeColor
	}
	r, g, bl := c.RGB255()
	// color.RGBA is alpha-premultiplied.
	return color.RGBA{
		R: uint8(uint32(r) * trailAlpha / 0xff),
		G: uint8(uint32(g) * trailAlpha / 0xff),
		B: uint8(uint32(bl) * trailAlpha / 0xff),
		A: trailAlpha,
	}
}
