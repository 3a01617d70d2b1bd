// Package sheets contains the drivers of the shared reservation workbook.
// A workbook is a set of named sheets; every sheet is a list of rows of string cells,
// the first row being the header.
package sheets

import "errors"

var (
	// ErrSheetNotFound возвращается, когда в книге нет листа с таким именем
	ErrSheetNotFound = errors.New("sheets: sheet not found")

	// ErrUnavailable возвращается, когда хранилище книги недоступно
	ErrUnavailable = errors.New("sheets: workbook unavailable")
)
