package appicon

// Option configures a Generator during creation.
//
// Example:
//
//	// Default font chain
//	g := appicon.NewGenerator()
//
//	// Reproducible output regardless of installed fonts
//	g := appicon.NewGenerator(appicon.WithFontLoaders(appicon.EmbeddedFont()))
type Option func(*options)

// options holds optional configuration for Generator creation.
type options struct {
	fonts []FontLoader
}

// defaultOptions returns the default generator options.
func defaultOptions() options {
	return options{
		fonts: DefaultFontLoaders(),
	}
}

// WithFontLoaders replaces the font resolution chain. Loaders are tried in
// order; an empty chain renders the icon without the text glyph.
func WithFontLoaders(loaders ...FontLoader) Option {
	return func(o *options) {
		o.fonts = loaders
	}
}

// WithFontPaths is shorthand for WithFontLoaders(FontLoadersFor(paths)...).
// The embedded font is always appended as the final fallback.
func WithFontPaths(paths ...string) Option {
	return func(o *options) {
		o.fonts = FontLoadersFor(paths)
	}
}
