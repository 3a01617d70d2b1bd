package reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	"github.com/m04kA/SMC-DeliveryBooking/internal/infra/storage/sheets"
)

// Repository репозиторий листа бронирований
type Repository struct {
	wb    Workbook
	sheet string
}

// NewRepository создает репозиторий бронирований поверх листа sheet
func NewRepository(wb Workbook, sheet string) *Repository {
	if sheet == "" {
		sheet = domain.ReservationsTable
	}
	return &Repository{wb: wb, sheet: sheet}
}

// GetAll возвращает все строки бронирований в порядке записи.
// Колонки ищутся по заголовку; отсутствующий лист означает пустую таблицу.
func (r *Repository) GetAll(ctx context.Context) ([]domain.StoredReservation, error) {
	rows, err := r.wb.ReadAll(ctx, r.sheet)
	if err != nil {
		if errors.Is(err, sheets.ErrSheetNotFound) {
			return []domain.StoredReservation{}, nil
		}
		return nil, fmt.Errorf("%w: GetAll: %v", ErrReadTable, err)
	}

	cols, body := sheets.HeaderColumns(rows, domain.ReservationsHeader)
	if !cols.Has(domain.ColumnDate) || !cols.Has(domain.ColumnSlots) {
		// Первая строка не заголовок: Append пишет такие листы в каноническом порядке
		cols, body = sheets.IndexColumns(domain.ReservationsHeader), rows
	}

	result := make([]domain.StoredReservation, 0, len(body))
	for _, row := range body {
		if sheets.IsBlank(row) {
			continue
		}
		result = append(result, domain.StoredReservation{
			Date:           cols.Cell(row, domain.ColumnDate),
			Slots:          cols.Cell(row, domain.ColumnSlots),
			Supplier:       cols.Cell(row, domain.ColumnSupplier),
			PackageCount:   cols.Cell(row, domain.ColumnPackageCount),
			PurchaseOrders: cols.Cell(row, domain.ColumnPurchaseOrders),
		})
	}

	return result, nil
}

// Append дописывает бронирование одной строкой.
// Значения раскладываются по колонкам существующего заголовка.
func (r *Repository) Append(ctx context.Context, res *domain.Reservation) error {
	rows, err := r.wb.ReadAll(ctx, r.sheet)
	if err != nil && !errors.Is(err, sheets.ErrSheetNotFound) {
		return fmt.Errorf("%w: Append - read header: %v", ErrAppendRow, err)
	}

	// Лист отсутствует или очищен: сначала заголовок, иначе первая запись станет им
	if len(rows) == 0 {
		if err := r.wb.EnsureSheet(ctx, r.sheet, domain.ReservationsHeader); err != nil {
			return fmt.Errorf("%w: Append - create sheet: %v", ErrAppendRow, err)
		}
		rows = [][]string{domain.ReservationsHeader}
	}

	cols, _ := sheets.HeaderColumns(rows, domain.ReservationsHeader)

	values := map[string]string{
		domain.ColumnDate:           res.DateCell(),
		domain.ColumnSlots:          res.SlotsCell(),
		domain.ColumnSupplier:       res.Supplier,
		domain.ColumnPackageCount:   res.PackageCountCell(),
		domain.ColumnPurchaseOrders: res.PurchaseOrdersCell(),
	}

	width := 0
	for _, idx := range cols {
		if idx+1 > width {
			width = idx + 1
		}
	}

	row := make([]string, width)
	for name, value := range values {
		idx, ok := cols[name]
		if !ok {
			// Лист без нужной колонки: пишем в каноническом порядке
			return r.appendCanonical(ctx, res)
		}
		row[idx] = value
	}

	if err := r.wb.AppendRow(ctx, r.sheet, row); err != nil {
		return fmt.Errorf("%w: Append: %v", ErrAppendRow, err)
	}
	return nil
}

func (r *Repository) appendCanonical(ctx context.Context, res *domain.Reservation) error {
	row := []string{
		res.DateCell(),
		res.SlotsCell(),
		res.Supplier,
		res.PackageCountCell(),
		res.PurchaseOrdersCell(),
	}
	if err := r.wb.AppendRow(ctx, r.sheet, row); err != nil {
		return fmt.Errorf("%w: Append: %v", ErrAppendRow, err)
	}
	return nil
}
