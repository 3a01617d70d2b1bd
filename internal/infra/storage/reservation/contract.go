package reservation

import "context"

// Workbook интерфейс книги с листами
type Workbook interface {
	ReadAll(ctx context.Context, sheet string) ([][]string, error)
	AppendRow(ctx context.Context, sheet string, row []string) error
	EnsureSheet(ctx context.Context, sheet string, header []string) error
}
