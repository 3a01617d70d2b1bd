package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-DeliveryBooking/internal/infra/storage/sheets"
)

// Workbook книга в памяти процесса (для локального запуска и тестов)
type Workbook struct {
	mu     sync.RWMutex
	sheets map[string][][]string
}

// NewWorkbook создает пустую книгу
func NewWorkbook() *Workbook {
	return &Workbook{sheets: make(map[string][][]string)}
}

// ReadAll возвращает все строки листа, включая заголовок
func (w *Workbook) ReadAll(ctx context.Context, sheet string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", sheets.ErrUnavailable, err)
	}

	w.mu.RLock()
	defer w.mu.RUnlock()

	rows, ok := w.sheets[sheet]
	if !ok {
		return nil, fmt.Errorf("%w: %s", sheets.ErrSheetNotFound, sheet)
	}

	result := make([][]string, len(rows))
	for i, row := range rows {
		result[i] = append([]string(nil), row...)
	}
	return result, nil
}

// AppendRow дописывает строку в конец листа
func (w *Workbook) AppendRow(ctx context.Context, sheet string, row []string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", sheets.ErrUnavailable, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	rows, ok := w.sheets[sheet]
	if !ok {
		return fmt.Errorf("%w: %s", sheets.ErrSheetNotFound, sheet)
	}

	w.sheets[sheet] = append(rows, append([]string(nil), row...))
	return nil
}

// EnsureSheet создает лист с заголовком, если его нет
func (w *Workbook) EnsureSheet(ctx context.Context, sheet string, header []string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", sheets.ErrUnavailable, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	rows, ok := w.sheets[sheet]
	if ok && len(rows) > 0 {
		return nil
	}

	w.sheets[sheet] = [][]string{append([]string(nil), header...)}
	return nil
}
