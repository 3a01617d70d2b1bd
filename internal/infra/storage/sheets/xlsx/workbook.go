package xlsx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-DeliveryBooking/internal/infra/storage/sheets"
)

// Workbook общая книга .xlsx на диске.
// Файл перечитывается при каждом обращении, поэтому записи других процессов видны сразу.
type Workbook struct {
	path string
	mu   sync.Mutex
}

// NewWorkbook открывает книгу по пути path, создавая пустой файл при отсутствии
func NewWorkbook(path string) (*Workbook, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("%w: create directory: %v", sheets.ErrUnavailable, err)
			}
		}

		f := excelize.NewFile()
		defer f.Close()
		if err := f.SaveAs(path); err != nil {
			return nil, fmt.Errorf("%w: create workbook: %v", sheets.ErrUnavailable, err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("%w: stat workbook: %v", sheets.ErrUnavailable, err)
	}

	return &Workbook{path: path}, nil
}

// ReadAll возвращает все строки листа, включая заголовок
func (w *Workbook) ReadAll(ctx context.Context, sheet string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", sheets.ErrUnavailable, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := w.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := requireSheet(f, sheet); err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", sheets.ErrUnavailable, sheet, err)
	}
	return rows, nil
}

// AppendRow дописывает строку после последней непустой строки листа
func (w *Workbook) AppendRow(ctx context.Context, sheet string, row []string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", sheets.ErrUnavailable, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := w.open()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := requireSheet(f, sheet); err != nil {
		return err
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", sheets.ErrUnavailable, sheet, err)
	}

	if err := writeRow(f, sheet, len(rows)+1, row); err != nil {
		return err
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("%w: save: %v", sheets.ErrUnavailable, err)
	}
	return nil
}

// EnsureSheet создает лист с заголовком, если его нет или он пуст
func (w *Workbook) EnsureSheet(ctx context.Context, sheet string, header []string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", sheets.ErrUnavailable, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := w.open()
	if err != nil {
		return err
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return fmt.Errorf("%w: lookup %s: %v", sheets.ErrUnavailable, sheet, err)
	}

	if idx == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("%w: create %s: %v", sheets.ErrUnavailable, sheet, err)
		}
	} else {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return fmt.Errorf("%w: read %s: %v", sheets.ErrUnavailable, sheet, err)
		}
		if len(rows) > 0 {
			return nil
		}
	}

	if err := writeRow(f, sheet, 1, header); err != nil {
		return err
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("%w: save: %v", sheets.ErrUnavailable, err)
	}
	return nil
}

func (w *Workbook) open() (*excelize.File, error) {
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", sheets.ErrUnavailable, w.path, err)
	}
	return f, nil
}

func requireSheet(f *excelize.File, sheet string) error {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return fmt.Errorf("%w: lookup %s: %v", sheets.ErrUnavailable, sheet, err)
	}
	if idx == -1 {
		return fmt.Errorf("%w: %s", sheets.ErrSheetNotFound, sheet)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, row []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("%w: cell name: %v", sheets.ErrUnavailable, err)
	}

	values := append([]string(nil), row...)
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("%w: write %s!%s: %v", sheets.ErrUnavailable, sheet, cell, err)
	}
	return nil
}
