package reservations

import "errors"

var (
	// ErrStoreUnreachable возвращается, когда хранилище недоступно (повторяемая ошибка)
	ErrStoreUnreachable = errors.New("reservations: store unreachable")

	// ErrSlotConflict возвращается, когда один из слотов уже занят к моменту записи
	ErrSlotConflict = errors.New("reservations: slot already taken")

	// ErrWriteUnverified возвращается, когда запись не удалось подтвердить повторным чтением
	ErrWriteUnverified = errors.New("reservations: write could not be verified")

	// ErrInvalidReservation возвращается при попытке записать неполное бронирование
	ErrInvalidReservation = errors.New("reservations: invalid reservation")
)
