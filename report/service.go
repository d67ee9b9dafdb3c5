package report

import (
	"bytes"
	"context"
	"strings"
	"time"
)

// Defaults supplies process-wide fallbacks for requests that omit a sheet
// reference. DefaultWorksheet holds a raw selector: an integer selects a
// tab by index, anything else by name.
type Defaults struct {
	SheetID   string
	Worksheet string
}

// ServiceConfig supplies dependencies for Service.
type ServiceConfig struct {
	Clients  ClientFactory
	Defaults Defaults
	Logger   Logger
	Now      func() time.Time
}

// Service runs the report pipeline: resolve the sheet reference, fetch the
// worksheet grid through a fresh client, encode it, and package the bytes
// with a filename and content type.
type Service struct {
	clients  ClientFactory
	defaults Defaults
	logger   Logger
	now      func() time.Time
}

// NewService creates a Service with the provided configuration.
func NewService(cfg ServiceConfig) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = NopLogger{}
	}
	nowFn := cfg.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Service{
		clients:  cfg.Clients,
		defaults: cfg.Defaults,
		logger:   logger,
		now:      nowFn,
	}
}

// Generate produces a downloadable report for the request. Defaults are
// applied for a missing sheet id or worksheet selector; the format defaults
// to CSV. Nothing is persisted: the output lives only in the returned bytes.
func (s *Service) Generate(ctx context.Context, req Request) (Report, error) {
	table, sheetID, err := s.fetch(ctx, req)
	if err != nil {
		return Report{}, err
	}

	now := s.now()

	format, err := ParseFormat(req.Format)
	if err != nil {
		return Report{}, err
	}

	buf := &bytes.Buffer{}
	written, err := encoderForFormat(format).Encode(ctx, table, buf)
	if err != nil {
		return Report{}, err
	}

	filename := reportFilename(sheetID, format, now)
	s.logger.Infof("generated report %s (%d rows, %d bytes)", filename, len(table.Rows), written)

	return Report{
		Bytes:       buf.Bytes(),
		Filename:    filename,
		ContentType: format.ContentType(),
	}, nil
}

// fetch resolves the sheet reference and retrieves the worksheet grid.
// The sheet id is validated before any backend contact.
func (s *Service) fetch(ctx context.Context, req Request) (Table, string, error) {
	sheetID := strings.TrimSpace(req.SheetID)
	if sheetID == "" {
		sheetID = strings.TrimSpace(s.defaults.SheetID)
	}
	if sheetID == "" {
		return Table{}, "", NewError(KindMissingSheetID, "no sheet id provided and no default configured", nil)
	}

	ws := req.Worksheet
	if ws == nil {
		ws = ParseWorksheet(s.defaults.Worksheet)
	}
	if ws == nil {
		ws = WorksheetByIndex(0)
	}

	if s.clients == nil {
		return Table{}, "", NewError(KindInternal, "sheet client factory not configured", nil)
	}
	client, err := s.clients.NewClient(ctx)
	if err != nil {
		return Table{}, "", err
	}

	s.logger.Debugf("fetching sheet %s worksheet %s", sheetID, ws)
	table, err := client.Fetch(ctx, sheetID, *ws)
	if err != nil {
		return Table{}, "", err
	}
	return table, sheetID, nil
}
