package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Row — строка таблицы: заголовок -> значение ячейки.
// Пустые ячейки в Cells не попадают, отсутствие ключа = «нет значения».
type Row struct {
	Line  int               // номер строки в файле (1-based)
	Cells map[string]string
}

// Get возвращает значение и признак его наличия.
func (r Row) Get(key string) (string, bool) {
	v, ok := r.Cells[key]
	return v, ok
}

// Table: заголовки в исходном порядке + строки данных.
type Table struct {
	Headers []string
	Rows    []Row
}

// ReadTable выберет парсер по расширению.
// headerRow: номер строки заголовков (1-based), значения < 1 означают первую строку
// для всех форматов.
func ReadTable(r io.Reader, filename string, headerRow int) (*Table, error) {
	if headerRow < 1 {
		headerRow = 1
	}
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx", ".xlsm":
		return readXLSX(r, headerRow)
	case ".xls":
		return readXLS(r, headerRow)
	case ".csv":
		return readCSV(r, headerRow)
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
}

// pickHeader берёт строку заголовков и подставляет Column N для пустых.
func pickHeader(rows [][]string, headerRow int) []string {
	idx := headerRow - 1
	if idx < 0 || idx >= len(rows) {
		idx = 0
	}
	h := rows[idx]
	out := make([]string, len(h))
	for i, v := range h {
		v = strings.TrimSpace(strings.TrimPrefix(v, "\ufeff"))
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return out
}

// buildTable: AoA -> Table; полностью пустые строки пропускаем.
func buildTable(rows [][]string, headerRow int) *Table {
	if len(rows) == 0 {
		return &Table{}
	}
	headers := pickHeader(rows, headerRow)
	start := headerRow // первая строка после заголовков
	if start < 1 {
		start = 1
	}
	t := &Table{Headers: headers}
	for r := start; r < len(rows); r++ {
		rec := rows[r]
		cells := make(map[string]string, len(headers))
		for c := 0; c < len(headers) && c < len(rec); c++ {
			v := strings.TrimSpace(rec[c])
			if v == "" {
				continue
			}
			cells[headers[c]] = v
		}
		if len(cells) == 0 {
			continue
		}
		t.Rows = append(t.Rows, Row{Line: r + 1, Cells: cells})
	}
	return t
}
