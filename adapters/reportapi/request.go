package reportapi

import (
	"context"
	"encoding/json"
	"io"

	"github.com/olyph/go-report/report"
)

// Request provides minimal request access for transport adapters.
type Request interface {
	Context() context.Context
	Method() string
	Path() string
	Header(name string) string
	Query(name string) string
	Body() io.ReadCloser
}

// reportPayload is the POST /api/report body. The sheet selector accepts a
// JSON number (tab index) or string (tab name).
type reportPayload struct {
	Username string          `json:"username"`
	Password string          `json:"password"`
	SheetID  string          `json:"sheet_id"`
	Sheet    *worksheetValue `json:"sheet"`
	Format   string          `json:"format"`
}

type worksheetValue struct {
	ws *report.Worksheet
}

func (v *worksheetValue) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var asName string
	if err := json.Unmarshal(data, &asName); err == nil {
		v.ws = report.WorksheetByName(asName)
		return nil
	}

	var asIndex int
	if err := json.Unmarshal(data, &asIndex); err == nil {
		v.ws = report.WorksheetByIndex(asIndex)
		return nil
	}

	return report.NewError(report.KindInternal, "invalid sheet selector", nil)
}

func (v *worksheetValue) worksheet() *report.Worksheet {
	if v == nil {
		return nil
	}
	return v.ws
}

// decodePayload reads the request body leniently: an unreadable or
// malformed body yields an empty payload, which fails caller
// authentication rather than producing a parse error.
func decodePayload(req Request) reportPayload {
	var payload reportPayload
	body := req.Body()
	if body == nil {
		return payload
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil || len(data) == 0 {
		return reportPayload{}
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return reportPayload{}
	}
	return payload
}
