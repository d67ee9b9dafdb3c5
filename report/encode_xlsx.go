package report

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	excelMaxRows     = 1048576
	defaultSheetName = "Sheet1"
)

// XLSXEncoder encodes tables as single-sheet XLSX workbooks.
type XLSXEncoder struct {
	// SheetName overrides the worksheet name. Defaults to "Sheet1".
	SheetName string
}

// Encode streams the table into an XLSX workbook, header row first.
func (e XLSXEncoder) Encode(ctx context.Context, table Table, w io.Writer) (int64, error) {
	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()

	sheetName := e.SheetName
	if sheetName == "" {
		sheetName = defaultSheetName
	}
	defaultSheet := file.GetSheetName(0)
	if defaultSheet != sheetName {
		file.SetSheetName(defaultSheet, sheetName)
	}

	stream, err := file.NewStreamWriter(sheetName)
	if err != nil {
		return 0, err
	}

	headerID, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return 0, err
	}

	rowIndex := 1
	if len(table.Header) > 0 {
		cells := make([]interface{}, len(table.Header))
		for i, label := range table.Header {
			cells[i] = excelize.Cell{StyleID: headerID, Value: label}
		}
		if err := stream.SetRow(fmt.Sprintf("A%d", rowIndex), cells); err != nil {
			return 0, err
		}
		rowIndex++
	}

	for _, row := range table.Rows {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if rowIndex > excelMaxRows {
			return 0, NewError(KindInternal, "xlsx row limit exceeded", nil)
		}

		cells := make([]interface{}, len(row))
		for i, value := range row {
			cells[i] = value
		}
		if err := stream.SetRow(fmt.Sprintf("A%d", rowIndex), cells); err != nil {
			return 0, err
		}
		rowIndex++
	}

	if err := stream.Flush(); err != nil {
		return 0, err
	}

	cw := &countingWriter{w: w}
	if _, err := file.WriteTo(cw); err != nil {
		return cw.count, err
	}
	return cw.count, nil
}
