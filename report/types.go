package report

import (
	"context"
	"strconv"
	"strings"
)

// Table is an ordered grid of string cells. The header defines the column
// names; a zero-value Table represents an empty worksheet.
type Table struct {
	Header []string
	Rows   [][]string
}

// IsEmpty reports whether the table has no header and no rows.
func (t Table) IsEmpty() bool {
	return len(t.Header) == 0 && len(t.Rows) == 0
}

// Columns returns the number of columns as defined by the header.
func (t Table) Columns() int {
	return len(t.Header)
}

// Worksheet selects a tab within a spreadsheet by index or by name.
type Worksheet struct {
	Index  int
	Name   string
	ByName bool
}

// WorksheetByIndex selects a worksheet by its zero-based tab index.
func WorksheetByIndex(index int) *Worksheet {
	return &Worksheet{Index: index}
}

// WorksheetByName selects a worksheet by its tab title.
func WorksheetByName(name string) *Worksheet {
	return &Worksheet{Name: name, ByName: true}
}

// ParseWorksheet interprets a raw selector string: an integer selects by
// index, anything else selects by name. Empty input selects nothing.
func ParseWorksheet(raw string) *Worksheet {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if index, err := strconv.Atoi(raw); err == nil {
		return WorksheetByIndex(index)
	}
	return WorksheetByName(raw)
}

func (w Worksheet) String() string {
	if w.ByName {
		return w.Name
	}
	return strconv.Itoa(w.Index)
}

// Request captures a report generation request.
type Request struct {
	SheetID   string
	Worksheet *Worksheet
	Format    string
}

// Report is a generated, downloadable report.
type Report struct {
	Bytes       []byte
	Filename    string
	ContentType string
}

// SheetClient reads a worksheet's cell grid as a table.
type SheetClient interface {
	Fetch(ctx context.Context, sheetID string, ws Worksheet) (Table, error)
}

// ClientFactory builds an authenticated sheet client. Implementations
// resolve credentials per call; nothing is cached between requests.
type ClientFactory interface {
	NewClient(ctx context.Context) (SheetClient, error)
}

// ClientFactoryFunc adapts a function to a ClientFactory.
type ClientFactoryFunc func(ctx context.Context) (SheetClient, error)

func (f ClientFactoryFunc) NewClient(ctx context.Context) (SheetClient, error) {
	return f(ctx)
}

// Logger provides logging hooks.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger is a no-op logger.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
