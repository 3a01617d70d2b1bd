package reservation

import "errors"

var (
	// ErrReadTable возвращается при ошибке чтения листа бронирований
	ErrReadTable = errors.New("reservation.repository: failed to read table")

	// ErrAppendRow возвращается при ошибке записи строки бронирования
	ErrAppendRow = errors.New("reservation.repository: failed to append row")
)
