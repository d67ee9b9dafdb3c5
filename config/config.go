// Package config holds the report service configuration.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the service configuration.
type Config struct {
	Server      ServerConfig
	Report      ReportConfig
	Credentials CredentialsConfig
	Token       TokenConfig
	Users       map[string]string
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string
	Port string
}

// ReportConfig holds process-wide sheet defaults. DefaultWorksheet is a
// raw selector: an integer tab index or a worksheet name.
type ReportConfig struct {
	DefaultSheetID   string
	DefaultWorksheet string
}

// CredentialsConfig names the prioritized service-account key locations.
type CredentialsConfig struct {
	JSONContent string
	File        string
	SecretFile  string
	LocalFile   string
}

// TokenConfig gates the plain download endpoint.
type TokenConfig struct {
	Enabled bool
	Secret  string
}

// Defaults returns a Config with sensible defaults.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: "5001",
		},
		Users: map[string]string{},
	}
}

// Load returns the defaults overridden from the environment.
func Load() Config {
	cfg := Defaults()

	if host := os.Getenv("HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if sheetID := os.Getenv("REPORT_SHEET_ID"); sheetID != "" {
		cfg.Report.DefaultSheetID = strings.TrimSpace(sheetID)
	}
	if worksheet := os.Getenv("REPORT_SHEET_NAME_OR_INDEX"); worksheet != "" {
		cfg.Report.DefaultWorksheet = strings.TrimSpace(worksheet)
	}
	if content := os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON_CONTENT"); content != "" {
		cfg.Credentials.JSONContent = content
	}
	if file := os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"); file != "" {
		cfg.Credentials.File = file
	}
	if secretFile := os.Getenv("GOOGLE_SERVICE_ACCOUNT_SECRET_FILE"); secretFile != "" {
		cfg.Credentials.SecretFile = secretFile
	}
	if localFile := os.Getenv("GOOGLE_SERVICE_ACCOUNT_LOCAL_FILE"); localFile != "" {
		cfg.Credentials.LocalFile = localFile
	}
	if useToken := os.Getenv("REPORT_USE_TOKEN"); useToken != "" {
		if parsed, err := strconv.ParseBool(useToken); err == nil {
			cfg.Token.Enabled = parsed
		}
	}
	if token := os.Getenv("REPORT_ACCESS_TOKEN"); token != "" {
		cfg.Token.Secret = token
	}
	if users := os.Getenv("REPORT_USERS"); users != "" {
		cfg.Users = ParseUsers(users)
	}

	return cfg
}

// ParseUsers parses comma-separated user:password pairs.
func ParseUsers(value string) map[string]string {
	users := map[string]string{}
	for _, pair := range strings.Split(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, password, ok := strings.Cut(pair, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			continue
		}
		users[name] = password
	}
	return users
}
