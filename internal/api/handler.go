package api

import (
	"net/http"

	"github.com/amterp/camtint/internal/model"
	"github.com/amterp/camtint/internal/provider"
	"github.com/amterp/camtint/internal/report"
	"github.com/amterp/camtint/internal/service"
	"github.com/amterp/camtint/internal/store"
)

// Handler serves the read-only JSON API over one timeline file. The
// file is re-read per request; the WebSocket change feed tells clients
// when to refetch.
type Handler struct {
	timelinePath string
	timelines    store.TimelineStore
	colorize     *service.ColorizeService
	prefs        map[int]model.ColorName
}

// NewHandler creates a handler for the given timeline file.
func NewHandler(timelinePath string, timelines store.TimelineStore, colorize *service.ColorizeService, prefs map[int]model.ColorName) *Handler {
	return &Handler{
		timelinePath: timelinePath,
		timelines:    timelines,
		colorize:     colorize,
		prefs:        prefs,
	}
}

// RegisterRoutes registers the API routes on the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/timeline", h.getTimeline)
	mux.HandleFunc("GET /api/v1/scan", h.getScan)
	mux.HandleFunc("GET /api/v1/mapping", h.getMapping)
	mux.HandleFunc("GET /api/v1/palette", h.getPalette)
}

func (h *Handler) load() (*provider.FileProvider, error) {
	tl, err := h.timelines.Load(h.timelinePath)
	if err != nil {
		return nil, err
	}
	return provider.NewFileProvider(tl, h.timelines, h.timelinePath), nil
}

func (h *Handler) getTimeline(w http.ResponseWriter, r *http.Request) {
	p, err := h.load()
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, p.Timeline())
}

func (h *Handler) getScan(w http.ResponseWriter, r *http.Request) {
	p, err := h.load()
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, toScanResponse(h.colorize.Scan(p)))
}

// MappingResponse is the proposed automatic mapping plus its diagnostics.
type MappingResponse struct {
	Mapping      map[int]model.ColorName `json:"mapping"`
	AngleCount   int                     `json:"angle_count"`
	UniqueColors int                     `json:"unique_colors"`
	Warning      string                  `json:"warning,omitempty"`
}

func (h *Handler) getMapping(w http.ResponseWriter, r *http.Request) {
	p, err := h.load()
	if err != nil {
		Error(w, err)
		return
	}

	scan := h.colorize.Scan(p)
	m := h.colorize.Allocate(service.ModeAuto, scan.Angles, h.prefs, nil)
	rep := report.Build(m)

	JSON(w, http.StatusOK, MappingResponse{
		Mapping:      m,
		AngleCount:   rep.AngleCount,
		UniqueColors: rep.UniqueColors,
		Warning:      rep.Warning(),
	})
}

// PaletteEntry describes one palette color for API consumers.
type PaletteEntry struct {
	Name model.ColorName `json:"name"`
	Hex  string          `json:"hex"`
}

func (h *Handler) getPalette(w http.ResponseWriter, r *http.Request) {
	entries := make([]PaletteEntry, len(model.Palette))
	for i, c := range model.Palette {
		entries[i] = PaletteEntry{Name: c, Hex: c.Hex()}
	}
	JSON(w, http.StatusOK, entries)
}

// ClipScanResponse is the per-clip detection result for API output.
type ClipScanResponse struct {
	Kind     model.TrackKind `json:"kind"`
	Name     string          `json:"name"`
	Angle    int             `json:"angle,omitempty"`
	Detected bool            `json:"detected"`
}

// ScanResponse wraps a scan result for JSON API responses.
type ScanResponse struct {
	Clips  []ClipScanResponse `json:"clips"`
	Angles []int              `json:"angles"`
}

func toScanResponse(result *service.ScanResult) ScanResponse {
	clips := make([]ClipScanResponse, len(result.Clips))
	for i, c := range result.Clips {
		clips[i] = ClipScanResponse{
			Kind:     c.Kind,
			Name:     c.Name,
			Angle:    c.Angle,
			Detected: c.Detected,
		}
	}
	return ScanResponse{Clips: clips, Angles: result.Angles}
}
