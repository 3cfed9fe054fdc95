package appicon

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/draw"
)

// Generator renders the application icon at arbitrary sizes.
// The font is resolved once on first use and shared by every size.
// A Generator is not safe for concurrent use.
type Generator struct {
	fonts []FontLoader

	font       *text.FontSource
	fontName   string
	fontLoaded bool
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Generator{fonts: o.fonts}
}

// Close releases the loaded font. Close is idempotent; a later Render
// resolves the font again.
func (g *Generator) Close() error {
	g.fontLoaded = false
	g.fontName = ""
	if g.font == nil {
		return nil
	}
	err := g.font.Close()
	g.font = nil
	return err
}

// FontName reports which loader supplied the font, or "" if none did or
// nothing has been rendered yet.
func (g *Generator) FontName() string {
	return g.fontName
}

func (g *Generator) loadFont() *text.FontSource {
	if g.fontLoaded {
		return g.font
	}
	g.fontLoaded = true
	src, name, err := LoadFont(g.fonts...)
	if err != nil {
		Logger().Warn("no font available, code glyph disabled", "err", err)
		return nil
	}
	g.font, g.fontName = src, name
	Logger().Debug("font resolved", "font", name)
	return src
}

// Render draws the icon at size×size and returns it with alpha.
func (g *Generator) Render(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	bg := Background(size)

	o := newOverlay(size)
	defer func() { _ = o.dc.Close() }()
	if err := o.drawPlane(); err != nil {
		return nil, fmt.Errorf("appicon: render %d: %w", size, err)
	}
	o.drawGlyph(g.loadFont())
	if err := o.drawDots(); err != nil {
		return nil, fmt.Errorf("appicon: render %d: %w", size, err)
	}

	fg := premultiplied(o.dc.Image())
	draw.Draw(bg, bg.Bounds(), fg, image.Point{}, draw.Over)

	mask, err := RoundedMask(size)
	if err != nil {
		return nil, err
	}
	return clip(bg, mask), nil
}

// premultiplied returns img as *image.RGBA with every color channel
// clamped to alpha. The overlay is white throughout, so clamping also turns
// straight-alpha white into its premultiplied form.
func premultiplied(img image.Image) *image.RGBA {
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(img.Bounds())
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	}
	p := rgba.Pix
	for i := 0; i+3 < len(p); i += 4 {
		a := p[i+3]
		p[i+0] = min(p[i+0], a)
		p[i+1] = min(p[i+1], a)
		p[i+2] = min(p[i+2], a)
	}
	return rgba
}

// Encode renders the icon at size and writes it to w as PNG.
func (g *Generator) Encode(w io.Writer, size int) error {
	img, err := g.Render(size)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("appicon: encode %d: %w", size, err)
	}
	return nil
}

// WriteSet writes FileName(size) into dir for every size, and CanonicalName
// next to it when size is CanonicalSize. Existing files are overwritten.
// It returns the written paths in order.
func (g *Generator) WriteSet(dir string, sizes []int) ([]string, error) {
	var written []string
	for _, size := range sizes {
		var buf bytes.Buffer
		if err := g.Encode(&buf, size); err != nil {
			return written, err
		}

		names := []string{FileName(size)}
		if size == CanonicalSize {
			names = append(names, CanonicalName)
		}
		for _, name := range names {
			p := filepath.Join(dir, name)
			if err := os.WriteFile(p, buf.Bytes(), 0o644); err != nil { //nolint:gosec // icons are public assets
				return written, fmt.Errorf("appicon: write %s: %w", p, err)
			}
			Logger().Info("icon written", "path", p, "size", size, "bytes", buf.Len())
			written = append(written, p)
		}
	}
	return written, nil
}
