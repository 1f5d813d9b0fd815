package license

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dlviewer/dlviewer/internal/platform/barcode"
	"github.com/dlviewer/dlviewer/internal/platform/metrics"
	"github.com/dlviewer/dlviewer/internal/platform/web"
)

// ListResponse is the body of GET /api/licenses.
type ListResponse struct {
	Success   bool      `json:"success"`
	Count     int       `json:"count"`
	Total     int       `json:"total"`
	Timestamp *string   `json:"timestamp"`
	Source    string    `json:"source"`
	Licenses  []License `json:"licenses"`
}

// GetResponse wraps a single record.
type GetResponse struct {
	Success bool    `json:"success"`
	License License `json:"license"`
}

// RefreshResponse reports how many records a forced reload produced.
type RefreshResponse struct {
	Success   bool    `json:"success"`
	Message   string  `json:"message"`
	Count     int     `json:"count"`
	Timestamp *string `json:"timestamp"`
}

// StatsResponse carries the aggregate counts for the current snapshot.
type StatsResponse struct {
	Success   bool    `json:"success"`
	Stats     Stats   `json:"stats"`
	Timestamp *string `json:"timestamp"`
}

// BarcodeResponse holds a PDF417 image as a PNG data URL.
type BarcodeResponse struct {
	Success bool   `json:"success"`
	Barcode string `json:"barcode"`
}

// Handler serves the license API under /api.
type Handler struct {
	svc      *Service
	renderer barcode.Renderer
	metrics  *metrics.Metrics
}

// NewHandler builds the API handler. A nil renderer makes /pdf417 report the
// barcode library as unavailable.
func NewHandler(svc *Service, renderer barcode.Renderer, m *metrics.Metrics) *Handler {
	return &Handler{svc: svc, renderer: renderer, metrics: m}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/licenses", h.ListLicenses)
	api.GET("/licenses/:id", h.GetLicense)
	api.GET("/refresh", h.Refresh)
	api.GET("/stats", h.Stats)
	api.GET("/pdf417", h.PDF417)
}

// ListLicenses returns the filtered records along with the unfiltered total.
func (h *Handler) ListLicenses(c echo.Context) error {
	res := h.svc.List(c.Request().Context(), ParseParams(c.QueryParams()))
	return c.JSON(http.StatusOK, ListResponse{
		Success:   true,
		Count:     len(res.Licenses),
		Total:     res.Total,
		Timestamp: web.Timestamp(res.FetchedAt),
		Source:    res.Source,
		Licenses:  res.Licenses,
	})
}

// GetLicense looks up one record by its numeric id.
func (h *Handler) GetLicense(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return web.Fail(c, http.StatusBadRequest, "invalid license id")
	}
	rec, err := h.svc.Get(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, web.NotFoundBody("License", id))
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, GetResponse{Success: true, License: rec})
}

func (h *Handler) Refresh(c echo.Context) error {
	snap := h.svc.Refresh(c.Request().Context())
	return c.JSON(http.StatusOK, RefreshResponse{
		Success:   true,
		Message:   fmt.Sprintf("Data refreshed. %d licenses loaded.", len(snap.Value)),
		Count:     len(snap.Value),
		Timestamp: web.Timestamp(h.svc.Now()),
	})
}

func (h *Handler) Stats(c echo.Context) error {
	stats := h.svc.Stats(c.Request().Context())
	return c.JSON(http.StatusOK, StatsResponse{
		Success:   true,
		Stats:     stats,
		Timestamp: web.Timestamp(h.svc.Now()),
	})
}

// PDF417 renders the data query parameter as a barcode.
func (h *Handler) PDF417(c echo.Context) error {
	data := c.QueryParam("data")
	if data == "" {
		h.metrics.BarcodeRendered("rejected")
		return web.Fail(c, http.StatusBadRequest, "No data provided")
	}
	if h.renderer == nil {
		h.metrics.BarcodeRendered("unavailable")
		return web.Fail(c, http.StatusInternalServerError, barcode.ErrUnavailable.Error())
	}

	png, err := h.renderer.Render(data)
	if err != nil {
		h.metrics.BarcodeRendered("error")
		return web.Fail(c, http.StatusInternalServerError, fmt.Sprintf("barcode generation failed: %v", err))
	}
	h.metrics.BarcodeRendered("ok")
	return c.JSON(http.StatusOK, BarcodeResponse{Success: true, Barcode: barcode.DataURL(png)})
}
