package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-router"

	reportrouter "github.com/olyph/go-report/adapters/router"
)

const homePage = `<!DOCTYPE html>
<html>
<head><title>Report Service</title></head>
<body>
<h1>Report Service</h1>
<p>POST /api/report with JSON credentials to download a report.</p>
<p>GET /download-report for the default report.</p>
</body>
</html>
`

// SetupRoutes registers all application routes.
func (a *App) SetupRoutes(r router.Router[*fiber.App]) {
	r.Get("/", a.renderHome())

	reportHandler := reportrouter.NewHandler(reportrouter.Config{
		Reports:     a.Service,
		Auth:        a.Auth,
		TokenGate:   a.Config.Token.Enabled,
		AccessToken: a.Config.Token.Secret,
		Logger:      a.Logger,
	})
	reportHandler.RegisterRoutes(r)
}

// renderHome serves a minimal landing page.
func (a *App) renderHome() router.HandlerFunc {
	return func(c router.Context) error {
		c.SetHeader("Content-Type", "text/html; charset=utf-8")
		c.Status(fiber.StatusOK)
		return c.Send([]byte(homePage))
	}
}
