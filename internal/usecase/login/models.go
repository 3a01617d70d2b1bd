package login

import "time"

// Request модель запроса на вход
type Request struct {
	Username string
	Password string
}

// Response модель ответа с открытой сессией
type Response struct {
	Token     string
	Supplier  string
	Email     string
	ExpiresAt time.Time
}
