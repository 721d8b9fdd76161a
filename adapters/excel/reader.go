package excel

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"sheetviz/domain/core"
	"sheetviz/domain/table"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading Excel and CSV files into a table snapshot
type DataReader struct {
	filename string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a data reader; the format is picked from the
// filename extension (.csv is CSV, everything else goes through excelize).
func NewDataReader(filename string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filename))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filename: filename, fileType: fileType}
}

// FileType returns the detected format
func (r *DataReader) FileType() string {
	return r.fileType
}

// ReadTable reads spreadsheet data from src into a Table. Failures are
// reported with the load-error taxonomy so callers can surface them as
// upload problems rather than internal errors.
func (r *DataReader) ReadTable(src io.Reader) (*table.Table, error) {
	switch r.fileType {
	case "csv":
		return r.readCSV(src)
	case "xlsx":
		return r.readExcel(src)
	default:
		return nil, core.NewLoadError("unsupported file type "+r.fileType, nil)
	}
}

// ReadFile opens and reads a spreadsheet from disk
func (r *DataReader) ReadFile() (*table.Table, error) {
	f, err := os.Open(r.filename)
	if err != nil {
		return nil, core.NewLoadError("cannot open "+r.filename, err)
	}
	defer f.Close()
	return r.ReadTable(f)
}

func (r *DataReader) readExcel(src io.Reader) (*table.Table, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, core.NewLoadError("unreadable Excel file", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, core.NewLoadError("Excel file has no sheets", nil)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, core.NewLoadError("failed to read sheet "+sheet, err)
	}
	return r.buildTable(rows)
}

func (r *DataReader) readCSV(src io.Reader) (*table.Table, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, core.NewLoadError("unreadable CSV file", err)
	}
	return r.buildTable(rows)
}

// buildTable converts raw string rows into a column-oriented Table.
// The first row is the header; short data rows are padded with empty
// cells so every column keeps the same length.
func (r *DataReader) buildTable(rows [][]string) (*table.Table, error) {
	if len(rows) < 2 {
		return nil, core.NewLoadError("file must have a header row and at least one data row", nil)
	}

	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	columns := make([]table.Column, len(headers))
	for i, header := range headers {
		columns[i] = table.Column{
			Name:   header,
			Values: make([]string, 0, len(rows)-1),
		}
	}

	for _, row := range rows[1:] {
		for j := range columns {
			cell := ""
			if j < len(row) {
				cell = strings.TrimSpace(row[j])
			}
			columns[j].Values = append(columns[j].Values, cell)
		}
	}

	return table.New(columns)
}
