package attachment

import "errors"

var (
	// ErrNotConfigured возвращается, когда источник вложения не задан
	ErrNotConfigured = errors.New("attachment client: source not configured")

	// ErrNotFound возвращается, когда документ отсутствует у источника
	ErrNotFound = errors.New("attachment client: document not found")

	// ErrTooLarge возвращается, когда документ превышает допустимый размер
	ErrTooLarge = errors.New("attachment client: document too large")

	// ErrUnavailable возвращается, когда источник недоступен
	ErrUnavailable = errors.New("attachment client: source unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("attachment client: internal error")
)
