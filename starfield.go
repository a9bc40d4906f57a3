package main

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
)

// Starfield constants
const (
	StarCell      = 6     // one candidate star per cell
	StarNoiseZoom = 180.0 // pixels per noise unit
	StarBase      = 0.03  // star probability where the noise is low
	StarDense     = 0.30  // extra probability in the densest bands
)

var backgroundColor = color.RGBA{0, 0, 0, 0xff}

type star struct {
	X, Y       int
	Brightness uint8
}

// starfield scatters dim stars whose density follows Perlin noise, giving
// the backdrop faint bands instead of uniform static. The same seed always
// yields the same sky.
func starfield(w, h int, seed int64) []star {
	noise := perlin.NewPerlin(2, 2, 3, seed)
	rng := rand.New(rand.NewSource(seed))

	var stars []star
	for cy := 0; cy < h; cy += StarCell {
		for cx := 0; cx < w; cx += StarCell {
			n := noise.Noise2D(float64(cx)/StarNoiseZoom, float64(cy)/StarNoiseZoom)
			p := StarBase
			if n > 0 {
				p += StarDense * n
			}
			if rng.Float64() >= p {
				continue
			}
			x, y := cx+rng.Intn(StarCell), cy+rng.Intn(StarCell)
			if x >= w || y >= h {
				continue
			}
			stars = append(stars, star{X: x, Y: y, Brightness: uint8(40 + rng.Intn(120))})
		}
	}
	return stars
}

func newStarfieldImage(w, h int, seed int64) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+3] = backgroundColor.A
	}
	for _, s := range starfield(w, h, seed) {
		img.SetRGBA(s.X, s.Y, color.RGBA{s.Brightness, s.Brightness, s.Brightness, 0xff})
	}
	return ebiten.NewImageFromImage(img)
}
