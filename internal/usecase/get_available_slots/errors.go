package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("invalid delivery date")

	// ErrStoreUnavailable возвращается, когда таблицу бронирований не удалось прочитать
	ErrStoreUnavailable = errors.New("reservation store unavailable")
)
