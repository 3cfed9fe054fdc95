// Package ico packages the canonical icon PNG into a multi-resolution
// Windows ICO container.
//
// Resampling to each embedded size is done by the winres encoder. The same
// icon can also be written as a Windows resource object (.syso) that the Go
// toolchain links into executables automatically.
package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	_ "image/png" // PNG sources
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/tc-hib/winres"

	"github.com/postgo/appicon"
)

// ContainerSizes are the square sizes embedded in every container, in the
// order they are requested from the encoder.
var ContainerSizes = []int{256, 128, 64, 48, 32, 16}

// DefaultSource and DefaultDestination are the paths used by icoconv.
const (
	DefaultSource      = appicon.CanonicalName
	DefaultDestination = "windows/icon.ico"
)

// Sentinel errors for the ico package.
var (
	// ErrSourceNotFound is returned by Convert when the source PNG is missing.
	ErrSourceNotFound = errors.New("ico: source image not found")

	// ErrMalformed is returned by Inspect for data that is not an ICO file.
	ErrMalformed = errors.New("ico: malformed icon file")

	// ErrUnknownArch is returned by WriteSyso for unsupported architectures.
	ErrUnknownArch = errors.New("ico: unknown architecture")
)

// Build resamples img to every size and returns the icon ready to be saved
// or embedded.
func Build(img image.Image, sizes []int) (*winres.Icon, error) {
	icon, err := winres.NewIconFromResizedImage(img, sizes)
	if err != nil {
		return nil, fmt.Errorf("ico: build icon: %w", err)
	}
	return icon, nil
}

// Encode writes img to w as an ICO container holding one resampled copy per
// size.
func Encode(w io.Writer, img image.Image, sizes []int) error {
	icon, err := Build(img, sizes)
	if err != nil {
		return err
	}
	if err := icon.SaveICO(w); err != nil {
		return fmt.Errorf("ico: save: %w", err)
	}
	return nil
}

// Load decodes the image at path. A missing file yields an error wrapping
// ErrSourceNotFound that names the path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is chosen by the user
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	} else if err != nil {
		return nil, fmt.Errorf("ico: open source: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("ico: decode %s: %w", path, err)
	}
	return img, nil
}

// Convert reads the PNG at src and writes an ICO with ContainerSizes to dst,
// creating dst's directory if needed and overwriting any existing file.
// When src does not exist nothing is created.
func Convert(src, dst string) error {
	img, err := Load(src)
	if err != nil {
		return err
	}
	b := img.Bounds()
	appicon.Logger().Debug("source loaded", "path", src, "width", b.Dx(), "height", b.Dy())

	var buf bytes.Buffer
	if err := Encode(&buf, img, ContainerSizes); err != nil {
		return err
	}
	if err := writeFile(dst, buf.Bytes()); err != nil {
		return err
	}
	appicon.Logger().Info("icon container written", "path", dst, "sizes", ContainerSizes, "bytes", buf.Len())
	return nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:gosec // build output directory
			return fmt.Errorf("ico: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // icons are public assets
		return fmt.Errorf("ico: write %s: %w", path, err)
	}
	return nil
}

// Entry is one image record from an ICO directory.
type Entry struct {
	Width    int
	Height   int
	BitCount int
	Size     int // payload bytes
	Offset   int // payload offset from the start of the file
}

const (
	headerLen = 6
	entryLen  = 16
)

// Inspect validates data as an ICO file and returns its directory entries
// in file order.
func Inspect(data []byte) ([]Entry, error) {
	if _, err := winres.LoadICO(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(data) < headerLen {
		return nil, fmt.Errorf("%w: short header", ErrMalformed)
	}
	le := binary.LittleEndian
	if le.Uint16(data[0:]) != 0 || le.Uint16(data[2:]) != 1 {
		return nil, fmt.Errorf("%w: not an icon", ErrMalformed)
	}
	n := int(le.Uint16(data[4:]))
	if len(data) < headerLen+n*entryLen {
		return nil, fmt.Errorf("%w: truncated directory", ErrMalformed)
	}

	entries := make([]Entry, n)
	for i := range entries {
		d := data[headerLen+i*entryLen:]
		entries[i] = Entry{
			Width:    dimension(d[0]),
			Height:   dimension(d[1]),
			BitCount: int(le.Uint16(d[6:])),
			Size:     int(le.Uint32(d[8:])),
			Offset:   int(le.Uint32(d[12:])),
		}
	}
	return entries, nil
}

// dimension decodes a directory width or height byte; 0 means 256.
func dimension(b byte) int {
	if b == 0 {
		return 256
	}
	return int(b)
}

// InspectFile is Inspect on the contents of path.
func InspectFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		return nil, fmt.Errorf("ico: read %s: %w", path, err)
	}
	return Inspect(data)
}

// Sizes returns the distinct square sizes in entries, largest first.
func Sizes(entries []Entry) []int {
	sizes := make([]int, 0, len(entries))
	for _, e := range entries {
		sizes = append(sizes, e.Width)
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	return slices.Compact(sizes)
}

var arches = map[string]winres.Arch{
	"386":   winres.ArchI386,
	"amd64": winres.ArchAMD64,
	"arm":   winres.ArchARM,
	"arm64": winres.ArchARM64,
}

// Arches lists the architecture names accepted by WriteSyso.
func Arches() []string {
	names := make([]string, 0, len(arches))
	for name := range arches {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// WriteSyso writes a COFF resource object for arch embedding img as the
// application icon at ContainerSizes. Go builds for windows/arch link it
// automatically when the file sits in the main package directory.
func WriteSyso(dst string, img image.Image, arch string) error {
	a, ok := arches[arch]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownArch, arch)
	}
	icon, err := Build(img, ContainerSizes)
	if err != nil {
		return err
	}

	rs := &winres.ResourceSet{}
	if err := rs.SetIcon(winres.Name("APPICON"), icon); err != nil {
		return fmt.Errorf("ico: set icon: %w", err)
	}

	var buf bytes.Buffer
	if err := rs.WriteObject(&buf, a); err != nil {
		return fmt.Errorf("ico: write object: %w", err)
	}
	if err := writeFile(dst, buf.Bytes()); err != nil {
		return err
	}
	appicon.Logger().Info("resource object written", "path", dst, "arch", arch, "bytes", buf.Len())
	return nil
}
