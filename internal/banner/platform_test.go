package banner

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hybridbuilder/covergen/internal/render/rendertest"
)

func TestPlatforms(t *testing.T) {
	want := []struct {
		name, label, file string
		width, height     int
	}{
		{"linkedin", "LinkedIn", "2024-12-27-cover-image.png", 1200, 628},
		{"substack", "Substack", "2024-12-27-substack-banner.png", 1100, 220},
		{"twitter", "Twitter", "2024-12-27-twitter-card.png", 1200, 675},
	}
	got := Platforms()
	if len(got) != len(want) {
		t.Fatalf("got %d platforms, want %d", len(got), len(want))
	}
	for i, w := range want {
		p := got[i]
		if p.Name != w.name || p.Label != w.label || p.FileName != w.file || p.Width != w.width || p.Height != w.height {
			t.Errorf("platform %d = %+v", i, p)
		}
	}
	if names := strings.Join(Names(), ","); names != "linkedin,substack,twitter" {
		t.Errorf("Names = %s", names)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"linkedin", "LinkedIn", " twitter "} {
		if _, err := Lookup(name); err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
		}
	}
	_, err := Lookup("facebook")
	if !errors.Is(err, ErrUnknownPlatform) {
		t.Fatalf("Lookup(facebook) err = %v", err)
	}
	if !strings.Contains(err.Error(), "linkedin, substack, twitter") {
		t.Errorf("error does not list the platforms: %v", err)
	}
}

func TestRenderDimensions(t *testing.T) {
	for _, p := range Platforms() {
		t.Run(p.Name, func(t *testing.T) {
			canvas, err := p.Render(rendertest.Fonts(), Options{})
			if err != nil {
				t.Fatal(err)
			}
			w, h := canvas.Size()
			if w != p.Width || h != p.Height {
				t.Errorf("size = %dx%d, want %dx%d", w, h, p.Width, p.Height)
			}
			if b := canvas.Image().Bounds(); b.Dx() != p.Width || b.Dy() != p.Height {
				t.Errorf("image bounds = %v", b)
			}
		})
	}
}

func TestConvenienceRenderers(t *testing.T) {
	fonts := rendertest.Fonts()
	for name, fn := range map[string]func() (int, int, error){
		"linkedin": func() (int, int, error) {
			c, err := LinkedIn(fonts, Options{})
			if err != nil {
				return 0, 0, err
			}
			w, h := c.Size()
			return w, h, nil
		},
		"substack": func() (int, int, error) {
			c, err := Substack(fonts, Options{})
			if err != nil {
				return 0, 0, err
			}
			w, h := c.Size()
			return w, h, nil
		},
		"twitter": func() (int, int, error) {
			c, err := Twitter(fonts, Options{})
			if err != nil {
				return 0, 0, err
			}
			w, h := c.Size()
			return w, h, nil
		},
	} {
		p, _ := Lookup(name)
		w, h, err := fn()
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if w != p.Width || h != p.Height {
			t.Errorf("%s: %dx%d", name, w, h)
		}
	}
}

func TestComposeUnknownPlatform(t *testing.T) {
	err := Platform{Name: "custom"}.Compose(rendertest.New(10, 10), rendertest.Fonts(), Options{})
	if !errors.Is(err, ErrUnknownPlatform) {
		t.Errorf("err = %v", err)
	}
}

func TestWriteLayoutTOML(t *testing.T) {
	tests := []struct {
		platform string
		contains []string
	}{
		{"linkedin", []string{`platform = "linkedin"`, `file = "2024-12-27-cover-image.png"`, `text = "Building Shareable Learning Design Skills"`, `color = "#3b82f6"`, `positions = [80, 250, 420, 600, 800]`}},
		{"substack", []string{`platform = "substack"`, `width = 1100`, `step = 70`, `scale = 0.7`}},
		{"twitter", []string{`platform = "twitter"`, `height = 675`, `padding = 15`, `text = "46 Principles"`}},
	}
	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			p, err := Lookup(tt.platform)
			if err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			if err := p.WriteLayoutTOML(&buf); err != nil {
				t.Fatal(err)
			}
			for _, s := range tt.contains {
				if !strings.Contains(buf.String(), s) {
					t.Errorf("layout missing %q:\n%s", s, buf.String())
				}
			}
		})
	}
}
