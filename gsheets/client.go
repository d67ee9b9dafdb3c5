package gsheets

import (
	"context"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/olyph/go-report/report"
)

// scopes bind the service account to read-only access for the spreadsheet
// API and its backing file storage.
var scopes = []string{
	sheets.SpreadsheetsReadonlyScope,
	drive.DriveReadonlyScope,
}

// Factory builds authenticated sheet clients. Credentials are resolved and
// the client constructed fresh on every call; nothing is cached.
type Factory struct {
	Resolver *Resolver
	Logger   report.Logger
}

// NewFactory creates a Factory over the configured credential locations.
func NewFactory(cfg CredentialConfig, logger report.Logger) *Factory {
	if logger == nil {
		logger = report.NopLogger{}
	}
	return &Factory{
		Resolver: NewResolver(cfg.Sources()...),
		Logger:   logger,
	}
}

// NewClient resolves credentials and constructs a read-only Sheets client.
// The backend validates the credential lazily, on the first API call.
func (f *Factory) NewClient(ctx context.Context) (report.SheetClient, error) {
	creds, err := f.Resolver.Resolve()
	if err != nil {
		return nil, err
	}
	f.logger().Debugf("using service account credentials from %s", creds.Source)

	parsed, err := google.CredentialsFromJSON(ctx, creds.JSON, scopes...)
	if err != nil {
		return nil, report.NewError(report.KindInvalidCredentials, "invalid service account key", err)
	}

	svc, err := sheets.NewService(ctx, option.WithCredentials(parsed))
	if err != nil {
		return nil, report.NewError(report.KindInternal, "building sheets service", err)
	}

	return &Client{svc: svc}, nil
}

func (f *Factory) logger() report.Logger {
	if f.Logger == nil {
		return report.NopLogger{}
	}
	return f.Logger
}
