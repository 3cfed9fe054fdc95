package appicon

import "strconv"

// DesignSize is the edge length of the design space all shapes are
// defined in. Coordinates are scaled by size/DesignSize.
const DesignSize = 512

// CanonicalSize is the size additionally written as CanonicalName.
const CanonicalSize = 512

// CanonicalName is the file the converter reads.
const CanonicalName = "appicon.png"

// GenerateSizes lists the PNG sizes written by a full run, largest first.
// Every size is drawn independently, so the order does not affect output.
var GenerateSizes = []int{512, 256, 128, 64, 32}

// FileName returns the per-size PNG name, e.g. "appicon-64.png".
func FileName(size int) string {
	return "appicon-" + strconv.Itoa(size) + ".png"
}

// scaled maps a design-space value to pixels at size, truncating.
func scaled(v float64, size int) int {
	return int(v * float64(size) / DesignSize)
}
