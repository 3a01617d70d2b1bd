package management

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// ErrEnsureSheet возвращается, когда лист управления не удалось создать
var ErrEnsureSheet = errors.New("management.repository: failed to ensure sheet")

// Workbook интерфейс книги с листами
type Workbook interface {
	EnsureSheet(ctx context.Context, sheet string, header []string) error
}

// Repository лист учета обслуживания поставок.
// Сервис только создает лист с заголовком, заполняют его сотрудники склада.
type Repository struct {
	wb    Workbook
	sheet string
}

// NewRepository создает репозиторий листа управления
func NewRepository(wb Workbook, sheet string) *Repository {
	if sheet == "" {
		sheet = domain.ManagementTable
	}
	return &Repository{wb: wb, sheet: sheet}
}

// Ensure создает лист с заголовком, если его нет
func (r *Repository) Ensure(ctx context.Context) error {
	if err := r.wb.EnsureSheet(ctx, r.sheet, domain.ManagementHeader); err != nil {
		return fmt.Errorf("%w: %v", ErrEnsureSheet, err)
	}
	return nil
}
