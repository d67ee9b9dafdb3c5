package report

import (
	"context"
	"encoding/csv"
	"io"
)

// CSVEncoder encodes tables as CSV.
type CSVEncoder struct {
	// Delimiter overrides the comma separator when non-zero.
	Delimiter rune
}

// Encode writes the table as UTF-8 CSV, header row first. An empty table
// produces no output.
func (e CSVEncoder) Encode(ctx context.Context, table Table, w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	writer := csv.NewWriter(cw)
	if e.Delimiter != 0 {
		writer.Comma = e.Delimiter
	}

	if len(table.Header) > 0 {
		if err := writer.Write(table.Header); err != nil {
			return cw.count, err
		}
	}

	for _, row := range table.Rows {
		if err := ctx.Err(); err != nil {
			return cw.count, err
		}
		if err := writer.Write(row); err != nil {
			return cw.count, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return cw.count, err
	}
	return cw.count, nil
}
