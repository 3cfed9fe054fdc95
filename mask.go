package appicon

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// cornerRadius is the design-space radius of the rounded clip.
const cornerRadius = 120

// RoundedMask returns a size×size coverage mask holding a filled rounded
// rectangle with corner radius int(120*size/512). Values are 255 inside,
// 0 outside, with anti-aliased edges.
func RoundedMask(size int) (*gg.Mask, error) {
	dc := gg.NewContext(size, size)
	defer func() { _ = dc.Close() }()

	r := scaled(cornerRadius, size)
	dc.SetRGBA(1, 1, 1, 1)
	dc.DrawRoundedRectangle(0, 0, float64(size), float64(size), float64(r))
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("appicon: rounded mask: %w", err)
	}
	Logger().Debug("rounded mask", "size", size, "radius", r)
	return gg.NewMaskFromAlpha(dc.Image()), nil
}

// alphaImage views a gg mask as an image.Alpha without copying.
func alphaImage(m *gg.Mask) *image.Alpha {
	return &image.Alpha{
		Pix:    m.Data(),
		Stride: m.Width(),
		Rect:   m.Bounds(),
	}
}

// clip pastes src through mask onto a fully transparent canvas.
// Wherever the mask is 0 the result is fully transparent.
func clip(src image.Image, mask *gg.Mask) *image.RGBA {
	out := image.NewRGBA(src.Bounds())
	draw.DrawMask(out, out.Bounds(), src, src.Bounds().Min, alphaImage(mask), image.Point{}, draw.Over)
	return out
}
