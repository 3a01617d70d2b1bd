package login

import (
	"context"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// CredentialRepository интерфейс репозитория учетных данных
type CredentialRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.Credential, error)
}

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Create(cred *domain.Credential) *domain.Session
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
