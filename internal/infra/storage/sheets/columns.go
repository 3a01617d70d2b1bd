package sheets

import "strings"

// Columns maps header names to column positions
type Columns map[string]int

// HeaderColumns builds the column index from the first row of a sheet.
// When the sheet has no header (or the first row is blank), fallback gives the positions.
func HeaderColumns(rows [][]string, fallback []string) (Columns, [][]string) {
	if len(rows) > 0 && !IsBlank(rows[0]) {
		return IndexColumns(rows[0]), rows[1:]
	}
	return IndexColumns(fallback), rows
}

// IndexColumns builds the column index from a header row; the first occurrence of a name wins
func IndexColumns(header []string) Columns {
	cols := make(Columns, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, exists := cols[name]; !exists {
			cols[name] = i
		}
	}
	return cols
}

// Cell returns the trimmed value of the named column, "" when the row is short or the column is missing
func (c Columns) Cell(row []string, name string) string {
	idx, ok := c[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// Has reports whether the named column exists
func (c Columns) Has(name string) bool {
	_, ok := c[name]
	return ok
}

// IsBlank reports whether every cell of the row is empty
func IsBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
