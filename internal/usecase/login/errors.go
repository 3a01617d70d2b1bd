package login

import "errors"

var (
	// ErrInvalidInput возвращается при пустом логине или пароле
	ErrInvalidInput = errors.New("login: invalid input data")

	// ErrInvalidCredentials возвращается при неверной паре логин/пароль
	ErrInvalidCredentials = errors.New("login: invalid credentials")

	// ErrStoreUnavailable возвращается, когда таблицу учетных данных не удалось прочитать
	ErrStoreUnavailable = errors.New("login: credential store unavailable")
)
