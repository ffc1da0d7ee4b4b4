// Package app drives banner generation: it renders every platform in order
// and writes the PNG files.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/hybridbuilder/covergen/internal/banner"
	"github.com/hybridbuilder/covergen/internal/render"
)

// DefaultOutputDir is where the banners land when no directory is given.
const DefaultOutputDir = "articles"

// Result is one written banner.
type Result struct {
	Platform banner.Platform
	Path     string
}

// Generator renders and saves the banners. The zero value writes to
// DefaultOutputDir with the system font candidates and discards progress.
type Generator struct {
	OutputDir string
	Fonts     render.FontSource
	Options   banner.Options
	Logger    Logger
	// Out receives the human-readable progress lines.
	Out io.Writer
}

func New(outputDir string) *Generator {
	return &Generator{OutputDir: outputDir, Logger: NoopLogger{}, Out: io.Discard}
}

func (g *Generator) withDefaults() Generator {
	cfg := *g
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.Logger == nil {
		cfg.Logger = NoopLogger{}
	}
	if cfg.Fonts == nil {
		resolver := render.NewResolver()
		resolver.Logger = cfg.Logger
		cfg.Fonts = resolver
	}
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	return cfg
}

// Generate renders LinkedIn, Substack and Twitter in that order. The first
// failure stops the run; files already written are left in place.
func (g *Generator) Generate(ctx context.Context) ([]Result, error) {
	cfg := g.withDefaults()

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	fmt.Fprintln(cfg.Out, "Generating cover images...")
	results := make([]Result, 0, len(banner.Platforms()))
	for _, p := range banner.Platforms() {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		path, err := cfg.generateOne(p)
		if err != nil {
			return results, err
		}
		fmt.Fprintf(cfg.Out, "  %s: %s\n", p.Label, path)
		results = append(results, Result{Platform: p, Path: path})
	}
	fmt.Fprintln(cfg.Out, "\nDone! All cover images generated.")
	return results, nil
}

func (g Generator) generateOne(p banner.Platform) (string, error) {
	canvas, err := p.Render(g.Fonts, g.Options)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", p.Name, err)
	}
	path := filepath.Join(g.OutputDir, p.FileName)
	if err := imaging.Save(canvas.Image(), path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	g.Logger.Infof("app", "wrote %s (%dx%d)", path, p.Width, p.Height)
	return path, nil
}
