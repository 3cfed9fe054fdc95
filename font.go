package appicon

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"
)

// LocalFontName is the monospace font looked up in the working directory.
const LocalFontName = "consola.ttf"

// SystemFontPath is the fixed OS location tried after LocalFontName.
const SystemFontPath = `C:\Windows\Fonts\consola.ttf`

// FontLoader is one font resolution strategy.
type FontLoader struct {
	// Name identifies the strategy in logs.
	Name string

	// Load returns the font source or an error if it is unavailable.
	Load func() (*text.FontSource, error)
}

// FileFont loads a TTF or OTF file from path.
// TTC collections are not supported by the parser.
func FileFont(path string) FontLoader {
	return FontLoader{
		Name: path,
		Load: func() (*text.FontSource, error) {
			return text.NewFontSourceFromFile(path)
		},
	}
}

// EmbeddedFont loads Go Mono, compiled into the binary. It is the last
// resort of the default chain and makes text rendering independent of the
// host.
func EmbeddedFont() FontLoader {
	return FontLoader{
		Name: "embedded:gomono",
		Load: func() (*text.FontSource, error) {
			return text.NewFontSource(gomono.TTF)
		},
	}
}

// DefaultFontLoaders returns the default resolution order: LocalFontName
// in the working directory, then SystemFontPath, then EmbeddedFont.
func DefaultFontLoaders() []FontLoader {
	return FontLoadersFor([]string{LocalFontName, SystemFontPath})
}

// FontLoadersFor returns a FileFont loader per path followed by
// EmbeddedFont.
func FontLoadersFor(paths []string) []FontLoader {
	loaders := make([]FontLoader, 0, len(paths)+1)
	for _, p := range paths {
		loaders = append(loaders, FileFont(p))
	}
	return append(loaders, EmbeddedFont())
}

// LoadFont tries loaders in order and returns the first font that loads
// along with the name of the loader that produced it. Failures are logged
// at debug level. ErrNoFont is returned, joined with every loader error,
// only when all loaders fail.
func LoadFont(loaders ...FontLoader) (*text.FontSource, string, error) {
	var errs []error
	for _, l := range loaders {
		src, err := l.Load()
		if err == nil {
			return src, l.Name, nil
		}
		Logger().Debug("font candidate unavailable", "font", l.Name, "err", err)
		errs = append(errs, fmt.Errorf("%s: %w", l.Name, err))
	}
	return nil, "", errors.Join(append([]error{ErrNoFont}, errs...)...)
}
