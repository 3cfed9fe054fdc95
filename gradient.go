package appicon

import (
	"image"
	"image/color"
)

// Gradient endpoint colors, #667eea at the top-left corner blending into
// #764ba2 towards the bottom-right.
var (
	GradientFrom = color.RGBA{R: 102, G: 126, B: 234, A: 255}
	GradientTo   = color.RGBA{R: 118, G: 75, B: 162, A: 255}
)

// Background returns an opaque size×size diagonal gradient.
//
// Each pixel interpolates between GradientFrom and GradientTo by
// (x+y)/(2*size), truncating every channel toward zero. Pixel (0,0) is
// exactly GradientFrom; the bottom-right pixel approaches GradientTo as
// size grows but never reaches it.
func Background(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if size <= 0 {
		return img
	}
	span := float64(2 * size)
	for y := 0; y < size; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < size; x++ {
			ratio := float64(x+y) / span
			i := x * 4
			row[i+0] = lerp(GradientFrom.R, GradientTo.R, ratio)
			row[i+1] = lerp(GradientFrom.G, GradientTo.G, ratio)
			row[i+2] = lerp(GradientFrom.B, GradientTo.B, ratio)
			row[i+3] = 0xff
		}
	}
	return img
}

func lerp(a, b uint8, t float64) uint8 {
	// #nosec G115 -- result stays between a and b
	return uint8(int(float64(a) + (float64(b)-float64(a))*t))
}
