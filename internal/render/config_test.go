package render_test

import (
	"testing"

	"github.com/hybridbuilder/covergen/internal/render"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    render.RGB
		wantErr bool
	}{
		{"#3b82f6", render.Primary, false},
		{"3B82F6", render.Primary, false},
		{" #10b981 ", render.Accent, false},
		{"#1e293b", render.BackgroundDark, false},
		{"#123", 0, true},
		{"#zzzzzz", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := render.ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRGB(t *testing.T) {
	if got := render.TextWhite.Hex(); got != "#f8fafc" {
		t.Errorf("Hex = %q", got)
	}
	r, g, b, a := render.Primary.RGBA()
	if r != 0x3b3b || g != 0x8282 || b != 0xf6f6 || a != 0xffff {
		t.Errorf("RGBA = %x %x %x %x", r, g, b, a)
	}

	var c render.RGB
	if err := c.UnmarshalText([]byte("#f59e0b")); err != nil {
		t.Fatal(err)
	}
	if c != render.Amber {
		t.Errorf("UnmarshalText = %v, want amber", c)
	}
	if err := c.UnmarshalText([]byte("amber")); err == nil {
		t.Error("UnmarshalText accepted a color name")
	}
}
