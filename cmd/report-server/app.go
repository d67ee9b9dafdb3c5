package main

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/olyph/go-report/adapters/reportapi"
	"github.com/olyph/go-report/config"
	"github.com/olyph/go-report/gsheets"
	"github.com/olyph/go-report/report"
)

// App holds the application dependencies.
type App struct {
	Config  config.Config
	Logger  *SimpleLogger
	Service *report.Service
	Auth    reportapi.Authenticator
}

// NewApp creates and initializes the application.
func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	logger := &SimpleLogger{prefix: "go-report"}

	factory := gsheets.NewFactory(gsheets.CredentialConfig{
		JSONContent: cfg.Credentials.JSONContent,
		File:        cfg.Credentials.File,
		SecretFile:  cfg.Credentials.SecretFile,
		LocalFile:   cfg.Credentials.LocalFile,
	}, logger)

	service := report.NewService(report.ServiceConfig{
		Clients: factory,
		Defaults: report.Defaults{
			SheetID:   cfg.Report.DefaultSheetID,
			Worksheet: cfg.Report.DefaultWorksheet,
		},
		Logger: logger,
	})

	return &App{
		Config:  cfg,
		Logger:  logger,
		Service: service,
		Auth:    staticAuthenticator{users: cfg.Users},
	}, nil
}

// SimpleLogger is a basic logger implementation.
type SimpleLogger struct {
	prefix string
}

func (l *SimpleLogger) Debugf(format string, args ...any) {
	fmt.Printf("[DEBUG] %s: %s\n", l.prefix, fmt.Sprintf(format, args...))
}

func (l *SimpleLogger) Infof(format string, args ...any) {
	fmt.Printf("[INFO] %s: %s\n", l.prefix, fmt.Sprintf(format, args...))
}

func (l *SimpleLogger) Errorf(format string, args ...any) {
	fmt.Printf("[ERROR] %s: %s\n", l.prefix, fmt.Sprintf(format, args...))
}

// staticAuthenticator verifies callers against the configured user map.
type staticAuthenticator struct {
	users map[string]string
}

func (a staticAuthenticator) VerifyUser(ctx context.Context, username, password string) (bool, error) {
	expected, ok := a.users[username]
	if !ok {
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(password)) == 1, nil
}
