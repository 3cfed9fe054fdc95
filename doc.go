// Package appicon draws the application icon and writes it as PNG files.
//
// # Overview
//
// The icon is generated procedurally: a diagonal gradient background, a
// stylized paper plane with motion trails, a "</>" code glyph and a few
// decorative dots, clipped to a rounded square. Drawing goes through the
// gg software rasterizer, so output is identical across machines for a
// given font.
//
// # Quick Start
//
//	g := appicon.NewGenerator()
//	defer g.Close()
//
//	// appicon-512.png ... appicon-32.png, plus appicon.png
//	paths, err := g.WriteSet(".", appicon.GenerateSizes)
//
// # Design Space
//
// Every shape is defined in a 512×512 design space and scaled by size/512,
// truncating to whole pixels the same way at every size.
//
// # Fonts
//
// The text glyph uses the first font that loads from an ordered list of
// [FontLoader] strategies. The default list tries consola.ttf in the working
// directory, then [SystemFontPath], then the embedded Go Mono face, so
// loading never fails outright.
//
// # Packaging
//
// Sub-package ico turns the canonical PNG into a multi-resolution ICO
// container and, optionally, a Windows resource object.
package appicon
