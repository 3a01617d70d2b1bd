package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается при дате доставки в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid delivery date")

	// ErrClosedDay возвращается, когда в выбранный день прием не работает
	ErrClosedDay = errors.New("create_booking: receiving is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает со слотом расписания
	// или двухслотовая доставка выходит за конец дня
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrTooLateToBook возвращается, когда выбранный слот сегодняшнего дня уже начался
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда слот занят
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrStoreUnavailable возвращается, когда таблица бронирований недоступна и запись не выполнена
	ErrStoreUnavailable = errors.New("create_booking: reservation store unavailable")

	// ErrWriteUnverified возвращается, когда запись отправлена, но не подтвердилась при проверке
	ErrWriteUnverified = errors.New("create_booking: reservation write could not be verified")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
