package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryBooking/internal/infra/storage/sheets"
)

type execCall struct {
	query string
	args  []interface{}
}

// fakeExecutor записывает ExecContext; чтение в этих тестах не используется
type fakeExecutor struct {
	calls   []execCall
	execErr error
}

func (f *fakeExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.calls = append(f.calls, execCall{query: query, args: args})
	if f.execErr != nil {
		return nil, f.execErr
	}
	return nil, nil
}

func (f *fakeExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func TestWorkbook_AppendRow_BuildsInsert(t *testing.T) {
	db := &fakeExecutor{}
	wb := NewWorkbook(db)

	err := wb.AppendRow(context.Background(), "proveedor_reservas", []string{"2025-01-15 0:00:00", "9:00:00"})
	require.NoError(t, err)

	require.Len(t, db.calls, 1)
	assert.Equal(t, "INSERT INTO workbook_rows (sheet,cells) VALUES ($1,$2)", db.calls[0].query)
	assert.Equal(t, "proveedor_reservas", db.calls[0].args[0])
}

func TestWorkbook_AppendRow_MissingSheet(t *testing.T) {
	db := &fakeExecutor{execErr: &pq.Error{Code: codeForeignKeyViolation}}
	wb := NewWorkbook(db)

	err := wb.AppendRow(context.Background(), "missing", []string{"x"})
	require.ErrorIs(t, err, sheets.ErrSheetNotFound)
}

func TestWorkbook_AppendRow_Unavailable(t *testing.T) {
	db := &fakeExecutor{execErr: errors.New("connection refused")}
	wb := NewWorkbook(db)

	err := wb.AppendRow(context.Background(), "proveedor_reservas", []string{"x"})
	require.ErrorIs(t, err, sheets.ErrUnavailable)
}

func TestWorkbook_EnsureSchema(t *testing.T) {
	db := &fakeExecutor{}
	require.NoError(t, NewWorkbook(db).EnsureSchema(context.Background()))

	require.Len(t, db.calls, 1)
	assert.Contains(t, db.calls[0].query, "CREATE TABLE IF NOT EXISTS workbook_rows")
}
