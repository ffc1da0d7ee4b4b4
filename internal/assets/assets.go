// Package assets exposes the font data compiled into the binary.
package assets

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FallbackRegularTTF and FallbackBoldTTF are used when none of the system
// font candidates can be loaded.
var (
	FallbackRegularTTF = goregular.TTF
	FallbackBoldTTF    = gobold.TTF
)

// FallbackTTF returns the built-in font for the requested weight.
func FallbackTTF(bold bool) []byte {
	if bold {
		return FallbackBoldTTF
	}
	return FallbackRegularTTF
}
