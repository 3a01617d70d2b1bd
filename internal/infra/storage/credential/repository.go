package credential

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	"github.com/m04kA/SMC-DeliveryBooking/internal/infra/storage/sheets"
)

var (
	// ErrCredentialNotFound возвращается, когда поставщик не найден
	ErrCredentialNotFound = errors.New("credential.repository: supplier not found")

	// ErrReadTable возвращается при ошибке чтения листа учетных данных
	ErrReadTable = errors.New("credential.repository: failed to read table")
)

// Workbook интерфейс книги с листами
type Workbook interface {
	ReadAll(ctx context.Context, sheet string) ([][]string, error)
}

// Repository репозиторий листа учетных данных поставщиков
type Repository struct {
	wb    Workbook
	sheet string
}

// NewRepository создает репозиторий учетных данных
func NewRepository(wb Workbook, sheet string) *Repository {
	if sheet == "" {
		sheet = domain.CredentialsTable
	}
	return &Repository{wb: wb, sheet: sheet}
}

// GetByUsername возвращает учетные данные поставщика.
// Имя сравнивается как строка после обрезки пробелов.
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.Credential, error) {
	rows, err := r.wb.ReadAll(ctx, r.sheet)
	if err != nil {
		if errors.Is(err, sheets.ErrSheetNotFound) {
			return nil, ErrCredentialNotFound
		}
		return nil, fmt.Errorf("%w: GetByUsername: %v", ErrReadTable, err)
	}

	cols, body := sheets.HeaderColumns(rows, domain.CredentialsHeader)
	username = strings.TrimSpace(username)

	for _, row := range body {
		if cols.Cell(row, domain.ColumnUsername) != username {
			continue
		}
		return &domain.Credential{
			Username: username,
			Password: cols.Cell(row, domain.ColumnPassword),
			Email:    cols.Cell(row, domain.ColumnEmail),
			CC:       domain.ParseCCList(cols.Cell(row, domain.ColumnCC)),
		}, nil
	}

	return nil, ErrCredentialNotFound
}
