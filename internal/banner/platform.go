// Package banner composes the three promotional banners, one function per
// platform. Each composition is literal: positions, sizes and strings come
// from the platform's layout value, and only text width is measured.
package banner

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hybridbuilder/covergen/internal/render"
)

const (
	linkedInWidth  = 1200
	linkedInHeight = 628
	substackWidth  = 1100
	substackHeight = 220
	twitterWidth   = 1200
	twitterHeight  = 675
)

// ErrUnknownPlatform is returned by Lookup for names it does not know.
var ErrUnknownPlatform = errors.New("unknown platform")

// Options toggles additions that are off in the default output.
type Options struct {
	// QRCode stamps a QR code of the footer link on the banners tall enough for one.
	QRCode bool
}

// Platform describes one output image.
type Platform struct {
	Name     string
	Label    string
	Width    int
	Height   int
	FileName string

	compose func(render.Drawer, render.FontSource, Options) error
	layout  func() any
}

// Platforms returns every platform in generation order.
func Platforms() []Platform {
	return []Platform{
		{
			Name: "linkedin", Label: "LinkedIn",
			Width: linkedInWidth, Height: linkedInHeight,
			FileName: "2024-12-27-cover-image.png",
			compose:  ComposeLinkedIn,
			layout:   func() any { return linkedInLayout() },
		},
		{
			Name: "substack", Label: "Substack",
			Width: substackWidth, Height: substackHeight,
			FileName: "2024-12-27-substack-banner.png",
			compose:  ComposeSubstack,
			layout:   func() any { return substackLayout() },
		},
		{
			Name: "twitter", Label: "Twitter",
			Width: twitterWidth, Height: twitterHeight,
			FileName: "2024-12-27-twitter-card.png",
			compose:  ComposeTwitter,
			layout:   func() any { return twitterLayout() },
		},
	}
}

// Names lists the platform names in generation order.
func Names() []string {
	platforms := Platforms()
	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = p.Name
	}
	return names
}

// Lookup finds a platform by name, case-insensitively.
func Lookup(name string) (Platform, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, p := range Platforms() {
		if p.Name == want {
			return p, nil
		}
	}
	return Platform{}, fmt.Errorf("%w %q (want one of %s)", ErrUnknownPlatform, name, strings.Join(Names(), ", "))
}

// Render allocates the platform canvas and composes the banner onto it.
func (p Platform) Render(fonts render.FontSource, opts Options) (*render.Canvas, error) {
	canvas := render.NewCanvas(p.Width, p.Height, render.BackgroundDark)
	if err := p.Compose(canvas, fonts, opts); err != nil {
		return nil, err
	}
	return canvas, nil
}

// Compose draws the banner onto an existing surface of the platform's size.
func (p Platform) Compose(d render.Drawer, fonts render.FontSource, opts Options) error {
	if p.compose == nil {
		return fmt.Errorf("%w %q", ErrUnknownPlatform, p.Name)
	}
	return p.compose(d, fonts, opts)
}

// Layout returns the platform's layout value.
func (p Platform) Layout() any {
	if p.layout == nil {
		return nil
	}
	return p.layout()
}

// WriteLayoutTOML encodes the platform's layout as TOML.
func (p Platform) WriteLayoutTOML(w io.Writer) error {
	doc := struct {
		Platform string `toml:"platform"`
		Width    int    `toml:"width"`
		Height   int    `toml:"height"`
		File     string `toml:"file"`
		Layout   any    `toml:"layout"`
	}{p.Name, p.Width, p.Height, p.FileName, p.Layout()}
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("encode %s layout: %w", p.Name, err)
	}
	return nil
}
