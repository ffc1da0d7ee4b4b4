package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hybridbuilder/covergen/internal/banner"
	"github.com/hybridbuilder/covergen/internal/render"
)

// maxThumbnailWidth caps the width query parameter.
const maxThumbnailWidth = 4096

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type platformResponse struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	File   string `json:"file"`
	URL    string `json:"url"`
}

// RouterConfig holds what the handlers need to render banners.
type RouterConfig struct {
	Fonts   render.FontSource
	Logger  Logger
	DevMode bool
}

// NewRouter builds the preview routes:
// - GET /healthz
// - GET /api/v1/platforms
// - GET /banners/{platform}.png[?width=N][&qr=1]
func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.Fonts == nil {
		cfg.Fonts = render.NewResolver()
	}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if cfg.DevMode {
		r.Use(WithDevCORS)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/platforms", handlePlatforms)
	})
	r.Get("/banners/{platform}.png", func(w http.ResponseWriter, req *http.Request) {
		handleBanner(w, req, cfg)
	})
	return r
}

func handlePlatforms(w http.ResponseWriter, _ *http.Request) {
	platforms := banner.Platforms()
	out := make([]platformResponse, 0, len(platforms))
	for _, p := range platforms {
		out = append(out, platformResponse{
			Name:   p.Name,
			Label:  p.Label,
			Width:  p.Width,
			Height: p.Height,
			File:   p.FileName,
			URL:    "/banners/" + p.Name + ".png",
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func handleBanner(w http.ResponseWriter, r *http.Request, cfg RouterConfig) {
	p, err := banner.Lookup(chi.URLParam(r, "platform"))
	if err != nil {
		if errors.Is(err, banner.ErrUnknownPlatform) {
			writeAPIError(w, http.StatusNotFound, "unknown_platform", err.Error())
			return
		}
		writeAPIError(w, http.StatusInternalServerError, "lookup_failed", err.Error())
		return
	}

	query := r.URL.Query()
	opts := banner.Options{}
	if raw := query.Get("qr"); raw != "" {
		qr, perr := strconv.ParseBool(raw)
		if perr != nil {
			writeAPIError(w, http.StatusBadRequest, "invalid_qr", "qr must be a boolean")
			return
		}
		opts.QRCode = qr
	}
	width := 0
	if raw := query.Get("width"); raw != "" {
		parsed, perr := strconv.Atoi(raw)
		if perr != nil || parsed <= 0 || parsed > maxThumbnailWidth {
			writeAPIError(w, http.StatusBadRequest, "invalid_width", "width must be between 1 and "+strconv.Itoa(maxThumbnailWidth))
			return
		}
		width = parsed
	}

	canvas, err := p.Render(cfg.Fonts, opts)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Errorf("web", "render %s failed: %v", p.Name, err)
		}
		writeAPIError(w, http.StatusInternalServerError, "render_failed", err.Error())
		return
	}

	img := canvas.Image()
	if width > 0 && width != p.Width {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if err := imaging.Encode(w, img, imaging.PNG); err != nil && cfg.Logger != nil {
		cfg.Logger.Errorf("web", "encode %s failed: %v", p.Name, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
