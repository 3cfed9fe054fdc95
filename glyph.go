package appicon

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// CodeGlyph is the text drawn in the lower right of the icon.
const CodeGlyph = "</>"

// designPoint is a coordinate in the 512-unit design space.
type designPoint struct {
	X, Y float64
}

// planeOffset moves the paper plane from its local origin into place.
var planeOffset = designPoint{X: 120, Y: 120}

var (
	planeBody = []designPoint{{30, 140}, {260, 10}, {260, 110}, {100, 180}}
	planeWing = []designPoint{{30, 140}, {100, 180}, {80, 240}}
)

const (
	planeBodyAlpha = 240
	planeWingAlpha = 215
	trailWidth     = 4
	glyphAlpha     = 204
	glyphFontSize  = 48
)

// trail is one motion line behind the plane, in plane-local coordinates.
type trail struct {
	From, To designPoint
	Alpha    uint8
}

var trails = []trail{
	{From: designPoint{10, 130}, To: designPoint{60, 145}, Alpha: 128},
	{From: designPoint{0, 150}, To: designPoint{50, 155}, Alpha: 102},
	{From: designPoint{5, 170}, To: designPoint{45, 170}, Alpha: 77},
}

var glyphOrigin = designPoint{X: 320, Y: 350}

// dot is a decorative circle in absolute design coordinates.
type dot struct {
	Center designPoint
	Radius float64
	Alpha  uint8
}

var dots = []dot{
	{Center: designPoint{380, 130}, Radius: 12, Alpha: 102},
	{Center: designPoint{420, 160}, Radius: 8, Alpha: 77},
	{Center: designPoint{140, 380}, Radius: 10, Alpha: 89},
}

// overlay draws the foreground shapes on a transparent size×size context.
type overlay struct {
	dc   *gg.Context
	size int
}

func newOverlay(size int) *overlay {
	return &overlay{dc: gg.NewContext(size, size), size: size}
}

// planePoint converts a plane-local point to pixels.
func (o *overlay) planePoint(p designPoint) (float64, float64) {
	x := scaled(p.X+planeOffset.X, o.size)
	y := scaled(p.Y+planeOffset.Y, o.size)
	return float64(x), float64(y)
}

func white(alpha uint8) (r, g, b, a float64) {
	return 1, 1, 1, float64(alpha) / 255
}

func (o *overlay) polygon(points []designPoint, alpha uint8) error {
	o.dc.SetRGBA(white(alpha))
	for i, p := range points {
		x, y := o.planePoint(p)
		if i == 0 {
			o.dc.MoveTo(x, y)
		} else {
			o.dc.LineTo(x, y)
		}
	}
	o.dc.ClosePath()
	return o.dc.Fill()
}

// drawPlane draws the body, the wing and the motion trails.
func (o *overlay) drawPlane() error {
	if err := o.polygon(planeBody, planeBodyAlpha); err != nil {
		return fmt.Errorf("plane body: %w", err)
	}
	if err := o.polygon(planeWing, planeWingAlpha); err != nil {
		return fmt.Errorf("plane wing: %w", err)
	}

	width := scaled(trailWidth, o.size)
	if width < 1 {
		width = 1
	}
	o.dc.SetLineWidth(float64(width))
	for i, t := range trails {
		x1, y1 := o.planePoint(t.From)
		x2, y2 := o.planePoint(t.To)
		o.dc.SetRGBA(white(t.Alpha))
		o.dc.DrawLine(x1, y1, x2, y2)
		if err := o.dc.Stroke(); err != nil {
			return fmt.Errorf("trail %d: %w", i, err)
		}
	}
	return nil
}

// drawGlyph draws CodeGlyph with its line box top-left at glyphOrigin.
// A nil src leaves the glyph out.
func (o *overlay) drawGlyph(src *text.FontSource) {
	if src == nil {
		return
	}
	px := scaled(glyphFontSize, o.size)
	if px < 1 {
		Logger().Debug("code glyph too small, skipped", "size", o.size)
		return
	}
	face := src.Face(float64(px))
	x := float64(scaled(glyphOrigin.X, o.size))
	y := float64(scaled(glyphOrigin.Y, o.size))

	o.dc.SetFont(face)
	o.dc.SetRGBA(white(glyphAlpha))
	o.dc.DrawString(CodeGlyph, x, y+face.Metrics().Ascent)
}

func (o *overlay) drawDots() error {
	for i, d := range dots {
		r := scaled(d.Radius, o.size)
		if r == 0 {
			continue
		}
		cx := scaled(d.Center.X, o.size)
		cy := scaled(d.Center.Y, o.size)
		o.dc.SetRGBA(white(d.Alpha))
		o.dc.DrawCircle(float64(cx), float64(cy), float64(r))
		if err := o.dc.Fill(); err != nil {
			return fmt.Errorf("dot %d: %w", i, err)
		}
	}
	return nil
}
