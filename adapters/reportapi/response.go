package reportapi

import (
	"fmt"
	"strings"

	"github.com/olyph/go-report/report"
)

// Response provides a minimal response interface for transport adapters.
type Response interface {
	SetHeader(name, value string)
	WriteHeader(status int)
	Write(data []byte) (int, error)
	WriteJSON(status int, payload any) error
}

// ErrorResponse describes JSON error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(res Response, status int, payload any) {
	_ = res.WriteJSON(status, payload)
}

func sanitizeFilename(filename string, format report.Format) string {
	name := strings.TrimSpace(filename)
	name = strings.ReplaceAll(name, "\"", "")
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" {
		if format != "" {
			name = fmt.Sprintf("report.%s", format.Ext())
		} else {
			name = "report"
		}
	}
	return name
}

func setDownloadHeaders(res Response, reportID, filename, contentType string) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	res.SetHeader("Content-Type", contentType)
	res.SetHeader("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	if reportID != "" {
		res.SetHeader("X-Report-Id", reportID)
	}
}
