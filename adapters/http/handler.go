// Package reporthttp adapts the report API controller to net/http.
package reporthttp

import (
	"net/http"

	"github.com/olyph/go-report/adapters/reportapi"
	"github.com/olyph/go-report/report"
)

// Config configures the HTTP adapter.
type Config = reportapi.Config

// Handler exposes report HTTP endpoints.
type Handler struct {
	controller *reportapi.Controller
}

// NewHandler creates a new HTTP handler.
func NewHandler(cfg Config) *Handler {
	return &Handler{controller: reportapi.NewController(cfg)}
}

// RegisterRoutes registers handlers on a compatible router.
func (h *Handler) RegisterRoutes(router any) {
	switch r := router.(type) {
	case interface{ Handle(string, http.Handler) }:
		r.Handle("/api/report", h)
		r.Handle("/download-report", h)
	case interface {
		HandleFunc(string, func(http.ResponseWriter, *http.Request))
	}:
		r.HandleFunc("/api/report", h.ServeHTTP)
		r.HandleFunc("/download-report", h.ServeHTTP)
	}
}

// ServeHTTP routes report endpoints.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	if h == nil || h.controller == nil {
		reportapi.WriteError(httpResponse{w: w}, report.NewError(report.KindInternal, "handler is nil", nil))
		return
	}

	req := httpRequest{r: r}
	res := httpResponse{w: w}

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/api/report":
		h.controller.HandleReport(req, res)
	case r.Method == http.MethodGet && r.URL.Path == "/download-report":
		h.controller.HandleDownload(req, res)
	default:
		res.SetHeader("Content-Type", "application/json")
		res.WriteHeader(http.StatusNotFound)
		_, _ = res.Write([]byte(`{"error":"not found"}`))
	}
}
