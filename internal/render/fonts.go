package render

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/hybridbuilder/covergen/internal/assets"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// BuiltinSource is the Font.Source of faces that did not come from disk.
const BuiltinSource = "builtin"

// BoldCandidate is probed before the regular list when a bold face is requested.
const BoldCandidate = "/System/Library/Fonts/Supplemental/Arial Bold.ttf"

// RegularCandidates returns the system font paths probed in order.
func RegularCandidates() []string {
	return []string{
		"/System/Library/Fonts/SFNSMono.ttf",
		"/System/Library/Fonts/Helvetica.ttc",
		"/System/Library/Fonts/Monaco.ttf",
		"/Library/Fonts/Arial Unicode.ttf",
	}
}

// Font is a loaded typeface at one size. It belongs to whoever asked for it.
type Font struct {
	Face   font.Face
	Size   int
	Bold   bool
	Source string
}

// Resolver finds a usable font for a size and weight. It never fails: when
// no candidate loads it returns the built-in face.
type Resolver struct {
	BoldCandidate string
	Candidates    []string
	Logger        interface {
		Debugf(string, string, ...interface{})
	}
}

var _ FontSource = (*Resolver)(nil)

func NewResolver() *Resolver {
	return &Resolver{BoldCandidate: BoldCandidate, Candidates: RegularCandidates()}
}

// GetFont resolves a font with the default candidate list.
func GetFont(size int, bold bool) *Font { return NewResolver().Get(size, bold) }

// Paths returns the probe order for the given weight.
func (r *Resolver) Paths(bold bool) []string {
	paths := make([]string, 0, len(r.Candidates)+1)
	if bold && r.BoldCandidate != "" {
		paths = append(paths, r.BoldCandidate)
	}
	return append(paths, r.Candidates...)
}

func (r *Resolver) Get(size int, bold bool) *Font {
	if size < 1 {
		size = 1
	}
	for _, path := range r.Paths(bold) {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		face, err := loadFace(path, size)
		if err != nil {
			r.debugf("font load failed for %s: %v", path, err)
			continue
		}
		r.debugf("loaded %s at %d", path, size)
		return &Font{Face: face, Size: size, Bold: bold, Source: path}
	}
	face, err := parseFace(assets.FallbackTTF(bold), size)
	if err != nil {
		r.debugf("builtin font failed, using basicfont: %v", err)
		face = basicfont.Face7x13
	}
	return &Font{Face: face, Size: size, Bold: bold, Source: BuiltinSource}
}

func (r *Resolver) debugf(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Debugf("fonts", format, args...)
	}
}

// loadFace reads a font file. Plain TrueType goes through freetype; anything
// it rejects (collections, CFF outlines) is retried with opentype.
func loadFace(path string, size int) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if tt, terr := truetype.Parse(data); terr == nil {
		return truetype.NewFace(tt, &truetype.Options{Size: float64(size), Hinting: font.HintingFull}), nil
	}
	face, err := parseFace(data, size)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return face, nil
}

func parseFace(data []byte, size int) (font.Face, error) {
	collection, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	if collection.NumFonts() == 0 {
		return nil, errors.New("empty font collection")
	}
	fnt, err := collection.Font(0)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(fnt, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
}
