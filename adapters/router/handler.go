// Package reportrouter adapts the report API controller to go-router.
package reportrouter

import (
	"github.com/goliatone/go-router"

	"github.com/olyph/go-report/adapters/reportapi"
)

// Config configures the go-router adapter.
type Config = reportapi.Config

// Handler exposes report routes for go-router.
type Handler struct {
	controller *reportapi.Controller
}

// NewHandler creates a go-router handler.
func NewHandler(cfg Config) *Handler {
	return &Handler{controller: reportapi.NewController(cfg)}
}

type routeRegistrar interface {
	Get(path string, handler router.HandlerFunc, middleware ...router.MiddlewareFunc) router.RouteInfo
	Post(path string, handler router.HandlerFunc, middleware ...router.MiddlewareFunc) router.RouteInfo
}

// RegisterRoutes registers routes on a compatible go-router router.
func (h *Handler) RegisterRoutes(r any) {
	registrar, ok := r.(routeRegistrar)
	if !ok {
		return
	}
	registrar.Post("/api/report", h.Report)
	registrar.Get("/download-report", h.Download)
}

// Report handles POST /api/report.
func (h *Handler) Report(c router.Context) error {
	if c == nil || h == nil || h.controller == nil {
		return nil
	}
	h.controller.HandleReport(routerRequest{ctx: c}, routerResponse{ctx: c})
	return nil
}

// Download handles GET /download-report.
func (h *Handler) Download(c router.Context) error {
	if c == nil || h == nil || h.controller == nil {
		return nil
	}
	h.controller.HandleDownload(routerRequest{ctx: c}, routerResponse{ctx: c})
	return nil
}
