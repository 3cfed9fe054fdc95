package appicon

import (
	"bytes"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if len(o.fonts) != 3 {
		t.Fatalf("default chain has %d loaders, want 3", len(o.fonts))
	}
	if o.fonts[2].Name != "embedded:gomono" {
		t.Errorf("last loader = %q, want the embedded font", o.fonts[2].Name)
	}
}

func TestWithFontLoaders(t *testing.T) {
	g := NewGenerator(WithFontLoaders(EmbeddedFont()))
	if len(g.fonts) != 1 {
		t.Errorf("got %d loaders, want 1", len(g.fonts))
	}

	g = NewGenerator(WithFontLoaders())
	if len(g.fonts) != 0 {
		t.Errorf("got %d loaders, want none", len(g.fonts))
	}
}

func TestGeneratorCloseIdempotent(t *testing.T) {
	g := NewGenerator(WithFontLoaders(EmbeddedFont()))
	if _, err := g.Render(16); err != nil {
		t.Fatal(err)
	}
	if err := g.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := g.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestGeneratorRenderAfterClose(t *testing.T) {
	g := NewGenerator(WithFontLoaders(EmbeddedFont()))
	defer func() { _ = g.Close() }()

	before, err := g.Render(128)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Close(); err != nil {
		t.Fatal(err)
	}
	if g.FontName() != "" {
		t.Errorf("FontName() after Close = %q, want empty", g.FontName())
	}

	after, err := g.Render(128)
	if err != nil {
		t.Fatal(err)
	}
	if g.FontName() != "embedded:gomono" {
		t.Errorf("FontName() after re-render = %q, want embedded:gomono", g.FontName())
	}
	if !bytes.Equal(before.Pix, after.Pix) {
		t.Error("render after Close differs from the first render")
	}
}
