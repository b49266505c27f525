package excel

import (
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"contactdesk/domain/table"
	"contactdesk/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Source reads sheets from a single xlsx workbook. The workbook is opened
// at most once and kept for the lifetime of the process; the file is
// assumed not to change while the process is live.
type Source struct {
	filePath string

	mu   sync.Mutex
	file *excelize.File
}

// NewSource creates a workbook source for the given file path. The file is
// not touched until the first read.
func NewSource(filePath string) *Source {
	return &Source{filePath: filePath}
}

// workbook opens the underlying file on first use and reuses it afterwards.
func (s *Source) workbook() (*excelize.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file != nil {
		return s.file, nil
	}

	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return nil, errors.FileNotFound(s.filePath)
	}

	start := time.Now()
	f, err := excelize.OpenFile(s.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open workbook %s", s.filePath)
	}
	log.Printf("[excel.Source] Workbook %s opened in %.2fms", s.filePath, float64(time.Since(start).Nanoseconds())/1e6)

	s.file = f
	return s.file, nil
}

// SheetNames lists the sheets in the workbook, in file order.
func (s *Source) SheetNames() ([]string, error) {
	f, err := s.workbook()
	if err != nil {
		return nil, err
	}
	return f.GetSheetList(), nil
}

// ReadSheet loads the named sheet into a table. Header cells and data
// cells are trimmed; rows shorter than the header simply omit the
// trailing columns.
func (s *Source) ReadSheet(name string) (*table.Table, error) {
	f, err := s.workbook()
	if err != nil {
		return nil, err
	}

	if !s.hasSheet(f, name) {
		return nil, errors.SheetNotFound(name)
	}

	start := time.Now()
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", name)
	}
	log.Printf("[excel.Source] Sheet %s read in %.2fms (%d rows)", name, float64(time.Since(start).Nanoseconds())/1e6, len(rows))

	return buildTable(rows), nil
}

func (s *Source) hasSheet(f *excelize.File, name string) bool {
	for _, sheet := range f.GetSheetList() {
		if sheet == name {
			return true
		}
	}
	return false
}

// buildTable converts raw string rows into a table. The first row is the
// header row; an empty sheet yields an empty table.
func buildTable(rows [][]string) *table.Table {
	if len(rows) == 0 {
		return &table.Table{}
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]table.Row, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		row := make(table.Row, len(headers))
		for j, cell := range raw {
			if j < len(headers) {
				row[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, row)
	}

	return &table.Table{Headers: headers, Rows: dataRows}
}
