package web

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hybridbuilder/covergen/internal/render/rendertest"
)

func newTestServer(t *testing.T, dev bool) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(RouterConfig{Fonts: rendertest.Fonts(), DevMode: dev}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, false)
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestListPlatforms(t *testing.T) {
	srv := newTestServer(t, false)
	resp, err := http.Get(srv.URL + "/api/v1/platforms")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var got []platformResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d platforms", len(got))
	}
	if got[1].Name != "substack" || got[1].Width != 1100 || got[1].Height != 220 || got[1].URL != "/banners/substack.png" {
		t.Errorf("substack = %+v", got[1])
	}
}

func TestBannerPNG(t *testing.T) {
	srv := newTestServer(t, false)
	tests := []struct {
		path          string
		width, height int
	}{
		{"/banners/substack.png", 1100, 220},
		{"/banners/Twitter.png", 1200, 675},
		{"/banners/substack.png?width=550", 550, 110},
		{"/banners/linkedin.png?qr=true&width=600", 600, 314},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d", resp.StatusCode)
			}
			if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
				t.Errorf("Content-Type = %q", ct)
			}
			img, err := png.Decode(resp.Body)
			if err != nil {
				t.Fatal(err)
			}
			if b := img.Bounds(); b.Dx() != tt.width || b.Dy() != tt.height {
				t.Errorf("image is %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.width, tt.height)
			}
		})
	}
}

func TestBannerErrors(t *testing.T) {
	srv := newTestServer(t, false)
	tests := []struct {
		path   string
		status int
		code   string
	}{
		{"/banners/facebook.png", http.StatusNotFound, "unknown_platform"},
		{"/banners/twitter.png?width=abc", http.StatusBadRequest, "invalid_width"},
		{"/banners/twitter.png?width=0", http.StatusBadRequest, "invalid_width"},
		{"/banners/twitter.png?width=5000", http.StatusBadRequest, "invalid_width"},
		{"/banners/twitter.png?qr=maybe", http.StatusBadRequest, "invalid_qr"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var body apiError
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if body.Error != tt.code {
				t.Errorf("error = %q, want %q", body.Error, tt.code)
			}
		})
	}
}

func TestDevCORS(t *testing.T) {
	srv := newTestServer(t, true)
	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/banners/twitter.png", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q", got)
	}
}

func TestCORSOffByDefault(t *testing.T) {
	srv := newTestServer(t, false)
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q, want none", got)
	}
}
