package gsheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"

	"github.com/olyph/go-report/report"
)

// Client reads worksheet grids from the Google Sheets API.
type Client struct {
	svc *sheets.Service
}

// Fetch opens the spreadsheet, selects the worksheet by index or title,
// and returns all cell values as a table. Values reflect the backend's
// formatted display rendering; no coercion, no formula evaluation.
func (c *Client) Fetch(ctx context.Context, sheetID string, ws report.Worksheet) (report.Table, error) {
	spreadsheet, err := c.svc.Spreadsheets.Get(sheetID).Context(ctx).Do()
	if err != nil {
		return report.Table{}, mapAPIError(err, sheetID)
	}

	title, err := worksheetTitle(spreadsheet, ws)
	if err != nil {
		return report.Table{}, err
	}

	resp, err := c.svc.Spreadsheets.Values.Get(sheetID, quoteTitle(title)).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return report.Table{}, mapAPIError(err, sheetID)
	}

	return tableFromValues(resp.Values), nil
}

// worksheetTitle resolves the selector against the spreadsheet's tabs.
func worksheetTitle(spreadsheet *sheets.Spreadsheet, ws report.Worksheet) (string, error) {
	if ws.ByName {
		for _, sheet := range spreadsheet.Sheets {
			if sheet.Properties != nil && sheet.Properties.Title == ws.Name {
				return sheet.Properties.Title, nil
			}
		}
		return "", report.NewError(report.KindWorksheetNotFound, fmt.Sprintf("worksheet %q not found", ws.Name), nil)
	}

	if ws.Index < 0 || ws.Index >= len(spreadsheet.Sheets) {
		return "", report.NewError(report.KindWorksheetNotFound, fmt.Sprintf("worksheet index %d out of range", ws.Index), nil)
	}
	properties := spreadsheet.Sheets[ws.Index].Properties
	if properties == nil {
		return "", report.NewError(report.KindWorksheetNotFound, fmt.Sprintf("worksheet index %d out of range", ws.Index), nil)
	}
	return properties.Title, nil
}

// quoteTitle builds an A1 range covering a whole worksheet. Single quotes
// in titles are doubled per A1 notation.
func quoteTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

// tableFromValues converts the API value grid into a table: row 0 is the
// header, the rest are data rows, all cells stringified as-is. An empty
// grid yields an empty table.
func tableFromValues(values [][]interface{}) report.Table {
	if len(values) == 0 {
		return report.Table{}
	}

	table := report.Table{
		Header: stringRow(values[0]),
		Rows:   make([][]string, 0, len(values)-1),
	}
	for _, row := range values[1:] {
		table.Rows = append(table.Rows, stringRow(row))
	}
	return table
}

func stringRow(row []interface{}) []string {
	cells := make([]string, len(row))
	for i, value := range row {
		if value == nil {
			continue
		}
		if s, ok := value.(string); ok {
			cells[i] = s
			continue
		}
		cells[i] = fmt.Sprint(value)
	}
	return cells
}

// mapAPIError translates backend failures into report error kinds: 403 is
// a resource shared-access denial, 404 an unknown spreadsheet id, and 401
// or a token retrieval failure means the credential itself was rejected.
func mapAPIError(err error, sheetID string) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusForbidden:
			return report.NewError(report.KindPermissionDenied,
				fmt.Sprintf("access to spreadsheet %s denied: share the sheet with the service account email", sheetID), err)
		case http.StatusNotFound:
			return report.NewError(report.KindNotFound, fmt.Sprintf("spreadsheet %s not found", sheetID), err)
		case http.StatusUnauthorized:
			return report.NewError(report.KindAuth, "spreadsheet backend rejected the credentials", err)
		}
		return report.NewError(report.KindInternal, fmt.Sprintf("google API error (%d): %s", gerr.Code, gerr.Message), err)
	}

	var rerr *oauth2.RetrieveError
	if errors.As(err, &rerr) {
		return report.NewError(report.KindAuth, "spreadsheet backend rejected the credentials", err)
	}

	return report.NewError(report.KindInternal, "spreadsheet backend request failed", err)
}
