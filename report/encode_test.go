package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func sampleTable() Table {
	return Table{
		Header: []string{"id", "name", "notes"},
		Rows: [][]string{
			{"1", "alice", "plain"},
			{"2", "bob, jr.", "comma, embedded"},
			{"3", "carol", "line\nbreak"},
		},
	}
}

func TestCSVEncoder_RoundTrip(t *testing.T) {
	table := sampleTable()
	buf := &bytes.Buffer{}

	written, err := CSVEncoder{}.Encode(context.Background(), table, buf)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if written != int64(buf.Len()) {
		t.Fatalf("expected %d bytes reported, got %d", buf.Len(), written)
	}

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if !reflect.DeepEqual(records[0], table.Header) {
		t.Fatalf("expected header %v, got %v", table.Header, records[0])
	}
	if len(records) != len(table.Rows)+1 {
		t.Fatalf("expected %d records, got %d", len(table.Rows)+1, len(records))
	}
	for i, row := range table.Rows {
		if !reflect.DeepEqual(records[i+1], row) {
			t.Fatalf("row %d: expected %v, got %v", i, row, records[i+1])
		}
	}
}

func TestCSVEncoder_EmptyTable(t *testing.T) {
	buf := &bytes.Buffer{}
	written, err := CSVEncoder{}.Encode(context.Background(), Table{}, buf)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if written != 0 || buf.Len() != 0 {
		t.Fatalf("expected empty output, got %d bytes", buf.Len())
	}
}

func TestCSVEncoder_ShortRowPassesThrough(t *testing.T) {
	table := Table{
		Header: []string{"a", "b", "c"},
		Rows:   [][]string{{"only", "two"}},
	}
	buf := &bytes.Buffer{}
	if _, err := (CSVEncoder{}).Encode(context.Background(), table, buf); err != nil {
		t.Fatalf("encode: %v", err)
	}

	reader := csv.NewReader(bytes.NewReader(buf.Bytes()))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 2 || len(records[1]) != 2 {
		t.Fatalf("expected short row preserved, got %v", records)
	}
}

func TestXLSXEncoder_RoundTrip(t *testing.T) {
	table := sampleTable()
	buf := &bytes.Buffer{}

	written, err := XLSXEncoder{}.Encode(context.Background(), table, buf)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if written == 0 {
		t.Fatalf("expected non-zero bytes")
	}

	file, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer file.Close()

	if name := file.GetSheetName(0); name != "Sheet1" {
		t.Fatalf("expected sheet name Sheet1, got %q", name)
	}

	rows, err := file.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != len(table.Rows)+1 {
		t.Fatalf("expected %d rows, got %d", len(table.Rows)+1, len(rows))
	}
	if !reflect.DeepEqual(rows[0], table.Header) {
		t.Fatalf("expected header %v, got %v", table.Header, rows[0])
	}
	for i, row := range table.Rows {
		if !reflect.DeepEqual(rows[i+1], row) {
			t.Fatalf("row %d: expected %v, got %v", i, row, rows[i+1])
		}
	}
}

func TestXLSXEncoder_EmptyTable(t *testing.T) {
	buf := &bytes.Buffer{}
	if _, err := (XLSXEncoder{}).Encode(context.Background(), Table{}, buf); err != nil {
		t.Fatalf("encode: %v", err)
	}

	file, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer file.Close()

	rows, err := file.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty sheet, got %v", rows)
	}
}

func TestXLSXEncoder_CustomSheetName(t *testing.T) {
	buf := &bytes.Buffer{}
	encoder := XLSXEncoder{SheetName: "Report"}
	if _, err := encoder.Encode(context.Background(), sampleTable(), buf); err != nil {
		t.Fatalf("encode: %v", err)
	}

	file, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer file.Close()

	if name := file.GetSheetName(0); name != "Report" {
		t.Fatalf("expected sheet name Report, got %q", name)
	}
}

func TestEncoderCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := (CSVEncoder{}).Encode(ctx, sampleTable(), &bytes.Buffer{}); err == nil {
		t.Fatalf("expected csv encode to observe cancellation")
	}
	if _, err := (XLSXEncoder{}).Encode(ctx, sampleTable(), &bytes.Buffer{}); err == nil {
		t.Fatalf("expected xlsx encode to observe cancellation")
	}
}
