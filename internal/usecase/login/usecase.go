package login

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	credentialRepo "github.com/m04kA/SMC-DeliveryBooking/internal/infra/storage/credential"
)

// UseCase use case входа поставщика
type UseCase struct {
	credentials CredentialRepository
	sessions    SessionStore
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(credentials CredentialRepository, sessions SessionStore, logger Logger) *UseCase {
	return &UseCase{
		credentials: credentials,
		sessions:    sessions,
		logger:      logger,
	}
}

// Execute проверяет учетные данные и открывает сессию
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	cred, err := uc.credentials.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, credentialRepo.ErrCredentialNotFound) {
			uc.logger.Warn("Login: unknown supplier=%s", username)
			return nil, ErrInvalidCredentials
		}
		uc.logger.Error("Login: failed to read credentials for supplier=%s: %v", username, err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if !passwordMatches(cred.Password, req.Password) {
		uc.logger.Warn("Login: wrong password for supplier=%s", username)
		return nil, ErrInvalidCredentials
	}

	session := uc.sessions.Create(cred)

	uc.logger.Info("Login: supplier=%s logged in", username)

	return &Response{
		Token:     session.Token,
		Supplier:  session.Supplier,
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// passwordMatches сравнивает пароль с сохраненным значением.
// В таблице пароль хранится как есть; значения вида "$2a$..." проверяются как bcrypt-хэш.
func passwordMatches(stored, provided string) bool {
	stored = strings.TrimSpace(stored)
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(provided)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(provided)) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
