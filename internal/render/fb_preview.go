package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	fb "github.com/gonutz/framebuffer"
	"github.com/hybridbuilder/covergen/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

// DefaultFramebuffer is the device the preview opens when none is given.
const DefaultFramebuffer = "/dev/fb0"

// FBPreview shows a rendered banner on a Linux framebuffer, letterboxed on
// the banner background color.
type FBPreview struct {
	Device string
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func NewFBPreview(device string) *FBPreview {
	if device == "" {
		device = DefaultFramebuffer
	}
	return &FBPreview{Device: device}
}

// Show scales img to the framebuffer and writes it out once.
func (p *FBPreview) Show(img image.Image) error {
	dev, err := fb.Open(p.Device)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", p.Device, err)
	}
	defer dev.Close()

	bounds := dev.Bounds()
	if p.Logger != nil {
		p.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}
	frame := Letterbox(img, bounds.Dx(), bounds.Dy(), BackgroundDark)
	blitToFB(dev, frame)
	return nil
}

// Letterbox scales img with nearest-neighbor sampling into a width x height
// frame, centered, keeping its aspect ratio.
func Letterbox(img image.Image, width, height int, background color.Color) *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(frame, frame.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)
	if img == nil {
		return frame
	}
	src := img.Bounds()
	dst := layout.Fit(src.Dx(), src.Dy(), frame.Bounds())
	if dst.Empty() {
		return frame
	}
	xdraw.NearestNeighbor.Scale(frame, dst, img, src, xdraw.Over, nil)
	return frame
}

type pixelSetter interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

func blitToFB(dev pixelSetter, frame *image.RGBA) {
	bounds := dev.Bounds()
	for y := 0; y < frame.Bounds().Dy() && y < bounds.Dy(); y++ {
		for x := 0; x < frame.Bounds().Dx() && x < bounds.Dx(); x++ {
			pixel := frame.RGBAAt(x, y)
			dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
