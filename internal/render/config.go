package render

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is an opaque 24-bit color. It implements color.Color so palette entries
// can be compile-time constants.
type RGB uint32

func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c>>16) & 0xff
	g = uint32(c>>8) & 0xff
	b = uint32(c) & 0xff
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string { return fmt.Sprintf("#%06x", uint32(c)&0xffffff) }

func (c RGB) String() string { return c.Hex() }

func (c RGB) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseHex parses #rrggbb (the leading # is optional).
func ParseHex(s string) (RGB, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 {
		return 0, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB(v), nil
}

// Palette shared by every banner.
const (
	BackgroundDark RGB = 0x1e293b // slate 800
	Primary        RGB = 0x3b82f6 // blue 500
	Accent         RGB = 0x10b981 // emerald 500
	TextWhite      RGB = 0xf8fafc // slate 50
	TextLight      RGB = 0x94a3b8 // slate 400
	Purple         RGB = 0x8b5cf6
	Amber          RGB = 0xf59e0b

	CodeBackground RGB = 0x0f172a
	DotRed         RGB = 0xef4444
	DotYellow      RGB = 0xeab308
	DotGreen       RGB = 0x22c55e
)
