package mailer

import "errors"

var (
	// ErrInvalidMessage возвращается, когда у письма нет получателя
	ErrInvalidMessage = errors.New("mailer: invalid message")

	// ErrSend возвращается при ошибке SMTP
	ErrSend = errors.New("mailer: failed to send message")
)
