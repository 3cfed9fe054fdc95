package appicon

import "errors"

// Sentinel errors for the appicon package.
var (
	// ErrInvalidSize is returned when a requested icon size is not positive.
	ErrInvalidSize = errors.New("appicon: icon size must be positive")

	// ErrNoFont is returned by LoadFont when every loader failed.
	ErrNoFont = errors.New("appicon: no font loader succeeded")
)
