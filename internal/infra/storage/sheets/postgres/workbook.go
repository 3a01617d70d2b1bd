package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DeliveryBooking/internal/infra/storage/sheets"
	"github.com/m04kA/SMC-DeliveryBooking/pkg/psqlbuilder"
)

const (
	sheetsTable = "workbook_sheets"
	rowsTable   = "workbook_rows"

	// foreign_key_violation
	codeForeignKeyViolation = "23503"
)

const schema = `
CREATE TABLE IF NOT EXISTS workbook_sheets (
	name       TEXT PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS workbook_rows (
	id         BIGSERIAL PRIMARY KEY,
	sheet      TEXT NOT NULL REFERENCES workbook_sheets (name),
	cells      TEXT[] NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS workbook_rows_sheet_id_idx ON workbook_rows (sheet, id);
`

// Workbook книга, хранящая листы в PostgreSQL: одна запись на строку листа.
// Строки только добавляются, порядок задается id.
type Workbook struct {
	db DBExecutor
}

// NewWorkbook создает книгу поверх соединения с БД
func NewWorkbook(db DBExecutor) *Workbook {
	return &Workbook{db: db}
}

// EnsureSchema создает таблицы книги, если их нет
func (w *Workbook) EnsureSchema(ctx context.Context) error {
	if _, err := w.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", sheets.ErrUnavailable, err)
	}
	return nil
}

// ReadAll возвращает все строки листа, включая заголовок
func (w *Workbook) ReadAll(ctx context.Context, sheet string) ([][]string, error) {
	if err := w.requireSheet(ctx, sheet); err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Select("cells").
		From(rowsTable).
		Where(squirrel.Eq{"sheet": sheet}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReadAll - build query: %v", sheets.ErrUnavailable, err)
	}

	rows, err := w.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ReadAll - exec query: %v", sheets.ErrUnavailable, err)
	}
	defer rows.Close()

	result := make([][]string, 0)
	for rows.Next() {
		var cells []string
		if err := rows.Scan(pq.Array(&cells)); err != nil {
			return nil, fmt.Errorf("%w: ReadAll - scan row: %v", sheets.ErrUnavailable, err)
		}
		result = append(result, cells)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ReadAll - iterate rows: %v", sheets.ErrUnavailable, err)
	}

	return result, nil
}

// AppendRow дописывает строку в конец листа
func (w *Workbook) AppendRow(ctx context.Context, sheet string, row []string) error {
	query, args, err := psqlbuilder.Insert(rowsTable).
		Columns("sheet", "cells").
		Values(sheet, pq.Array(row)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AppendRow - build query: %v", sheets.ErrUnavailable, err)
	}

	if _, err := w.db.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == codeForeignKeyViolation {
			return fmt.Errorf("%w: %s", sheets.ErrSheetNotFound, sheet)
		}
		return fmt.Errorf("%w: AppendRow - exec query: %v", sheets.ErrUnavailable, err)
	}

	return nil
}

// EnsureSheet создает лист с заголовком, если его нет или он пуст
func (w *Workbook) EnsureSheet(ctx context.Context, sheet string, header []string) error {
	query, args, err := psqlbuilder.Insert(sheetsTable).
		Columns("name").
		Values(sheet).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: EnsureSheet - build insert query: %v", sheets.ErrUnavailable, err)
	}

	if _, err := w.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: EnsureSheet - exec insert query: %v", sheets.ErrUnavailable, err)
	}

	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").
		From(rowsTable).
		Where(squirrel.Eq{"sheet": sheet}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: EnsureSheet - build count query: %v", sheets.ErrUnavailable, err)
	}

	var count int
	if err := w.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&count); err != nil {
		return fmt.Errorf("%w: EnsureSheet - scan count: %v", sheets.ErrUnavailable, err)
	}

	if count > 0 {
		return nil
	}

	return w.AppendRow(ctx, sheet, header)
}

func (w *Workbook) requireSheet(ctx context.Context, sheet string) error {
	query, args, err := psqlbuilder.Select("name").
		From(sheetsTable).
		Where(squirrel.Eq{"name": sheet}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: build sheet lookup: %v", sheets.ErrUnavailable, err)
	}

	var name string
	if err := w.db.QueryRowContext(ctx, query, args...).Scan(&name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s", sheets.ErrSheetNotFound, sheet)
		}
		return fmt.Errorf("%w: sheet lookup: %v", sheets.ErrUnavailable, err)
	}
	return nil
}
