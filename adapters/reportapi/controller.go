package reportapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/olyph/go-report/report"
)

// Generator runs the report pipeline.
type Generator interface {
	Generate(ctx context.Context, req report.Request) (report.Report, error)
}

// Authenticator verifies caller credentials. It is an opaque predicate:
// the backing user store is not this package's concern.
type Authenticator interface {
	VerifyUser(ctx context.Context, username, password string) (bool, error)
}

// AuthenticatorFunc adapts a function to an Authenticator.
type AuthenticatorFunc func(ctx context.Context, username, password string) (bool, error)

func (f AuthenticatorFunc) VerifyUser(ctx context.Context, username, password string) (bool, error) {
	return f(ctx, username, password)
}

// Config configures the shared report API controller.
type Config struct {
	Reports     Generator
	Auth        Authenticator
	TokenGate   bool
	AccessToken string
	Logger      report.Logger
	IDGenerator func() string
}

// Controller exposes report API handlers for multiple transports.
type Controller struct {
	reports     Generator
	auth        Authenticator
	tokenGate   bool
	accessToken string
	logger      report.Logger
	idGenerator func() string
}

// NewController creates a shared report API controller.
func NewController(cfg Config) *Controller {
	logger := cfg.Logger
	if logger == nil {
		logger = report.NopLogger{}
	}
	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = uuid.NewString
	}
	return &Controller{
		reports:     cfg.Reports,
		auth:        cfg.Auth,
		tokenGate:   cfg.TokenGate,
		accessToken: cfg.AccessToken,
		logger:      logger,
		idGenerator: idGen,
	}
}

// HandleReport serves POST /api/report: authenticate the caller, run the
// pipeline, and stream the result back as an attachment.
func (c *Controller) HandleReport(req Request, res Response) {
	if c == nil || res == nil {
		return
	}
	if req == nil {
		WriteError(res, report.NewError(report.KindInternal, "request is nil", nil))
		return
	}

	payload := decodePayload(req)

	username := strings.TrimSpace(payload.Username)
	password := payload.Password
	if username == "" || password == "" {
		writeJSON(res, http.StatusUnauthorized, ErrorResponse{Error: "authentication required (username and password)"})
		return
	}
	if c.auth == nil {
		WriteError(res, report.NewError(report.KindInternal, "authenticator not configured", nil))
		return
	}
	ok, err := c.auth.VerifyUser(req.Context(), username, password)
	if err != nil {
		WriteError(res, report.NewError(report.KindInternal, "verifying user", err))
		return
	}
	if !ok {
		writeJSON(res, http.StatusUnauthorized, ErrorResponse{Error: "invalid username or password"})
		return
	}

	sheetID := strings.TrimSpace(payload.SheetID)
	if sheetID == "" {
		sheetID = strings.TrimSpace(req.Query("sheet_id"))
	}

	c.serveReport(req, res, report.Request{
		SheetID:   sheetID,
		Worksheet: payload.Sheet.worksheet(),
		Format:    payload.Format,
	})
}

// HandleDownload serves GET /download-report: an optionally token-gated CSV
// built purely from the process-wide default sheet configuration.
func (c *Controller) HandleDownload(req Request, res Response) {
	if c == nil || res == nil {
		return
	}
	if req == nil {
		WriteError(res, report.NewError(report.KindInternal, "request is nil", nil))
		return
	}

	if c.tokenGate {
		token := req.Query("token")
		if token == "" {
			token = req.Header("X-Report-Token")
		}
		if token == "" || c.accessToken == "" || token != c.accessToken {
			writeJSON(res, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
			return
		}
	}

	c.serveReport(req, res, report.Request{Format: string(report.FormatCSV)})
}

func (c *Controller) serveReport(req Request, res Response, reportReq report.Request) {
	if c.reports == nil {
		WriteError(res, report.NewError(report.KindInternal, "report service not configured", nil))
		return
	}

	reportID := c.idGenerator()
	result, err := c.reports.Generate(req.Context(), reportReq)
	if err != nil {
		c.logger.Errorf("report %s failed: %s: %v", reportID, report.KindFromError(err), err)
		WriteError(res, err)
		return
	}

	setDownloadHeaders(res, reportID, sanitizeFilename(result.Filename, ""), result.ContentType)
	res.WriteHeader(http.StatusOK)
	if _, err := res.Write(result.Bytes); err != nil {
		c.logger.Errorf("report %s write failed: %v", reportID, err)
	}
}

// WriteError translates a pipeline failure into the user-facing JSON error.
// Credential and sharing problems carry their configuration remedy; the
// rest fall back to a generic message naming the error kind.
func WriteError(res Response, err error) {
	if err == nil {
		res.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(res, http.StatusInternalServerError, ErrorResponse{Error: userMessage(err)})
}

func userMessage(err error) string {
	switch report.KindFromError(err) {
	case report.KindCredentialsNotFound:
		return "service account credentials not found: upload a service account key file or set the raw JSON credential content"
	case report.KindPermissionDenied:
		return "permission denied: ensure the sheet is shared with the service account email and the APIs are enabled"
	default:
		return fmt.Sprintf("internal error: %s: %s", report.KindFromError(err), err.Error())
	}
}
