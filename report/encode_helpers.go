package report

import (
	"context"
	"io"
)

// Encoder serializes a table into a byte stream.
type Encoder interface {
	Encode(ctx context.Context, table Table, w io.Writer) (int64, error)
}

type countingWriter struct {
	w     io.Writer
	count int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.count += int64(n)
	return n, err
}

func encoderForFormat(format Format) Encoder {
	switch format {
	case FormatXLSX:
		return XLSXEncoder{}
	default:
		return CSVEncoder{}
	}
}
