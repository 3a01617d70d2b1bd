// Package lock provides optional mutual exclusion for reservation commits.
package lock

import "errors"

var (
	// ErrLockTimeout возвращается, когда блокировку не удалось взять за отведенное время
	ErrLockTimeout = errors.New("lock: acquire timeout")

	// ErrLockBackend возвращается при ошибках хранилища блокировок
	ErrLockBackend = errors.New("lock: backend error")
)
