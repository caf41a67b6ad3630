// internal/handlers/upload/preview-import/parser.go
package previewimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	errUnsupportedType = errors.New("unsupported file type")
	errEmptyHeaders    = errors.New("no column headers")
)

// parseUpload reads the uploaded spreadsheet and splits it into the
// header row and the data rows. The file type is derived from the
// extension; content sniffing is deliberately not attempted.
func parseUpload(fileName string, r io.Reader) (fileType string, headers []string, rows [][]string, err error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		fileType = "csv"
		rows, err = parseCSV(r)
	case ".xlsx":
		fileType = "xlsx"
		rows, err = parseXLSX(r)
	default:
		return "", nil, nil, errUnsupportedType
	}
	if err != nil {
		return fileType, nil, nil, err
	}

	if len(rows) == 0 {
		return fileType, nil, nil, errEmptyHeaders
	}

	headers = rows[0]
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}
	if !hasAnyHeader(headers) {
		return fileType, nil, nil, errEmptyHeaders
	}

	return fileType, headers, rows[1:], nil
}

func parseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

func parseXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	// Only the first sheet is imported.
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func hasAnyHeader(headers []string) bool {
	for _, h := range headers {
		if h != "" {
			return true
		}
	}
	return false
}
