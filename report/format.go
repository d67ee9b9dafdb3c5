package report

import (
	"fmt"
	"strings"
)

// Format is the report output format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat coerces a raw format value into a known format. Matching is
// case-insensitive; an empty value defaults to CSV. "text/csv" is accepted
// as an alias for csv and "excel" for xlsx.
func ParseFormat(raw string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	switch normalized {
	case "", string(FormatCSV), "text/csv":
		return FormatCSV, nil
	case string(FormatXLSX), "excel":
		return FormatXLSX, nil
	default:
		return "", NewError(KindUnsupportedFormat, fmt.Sprintf("unsupported format %q: use 'csv' or 'xlsx'", strings.TrimSpace(raw)), nil)
	}
}

// Ext returns the file extension for the format.
func (f Format) Ext() string {
	return string(f)
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}
