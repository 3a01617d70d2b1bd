package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-DeliveryBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// SessionHeader заголовок с токеном сессии поставщика
const SessionHeader = "X-Session-Token"

const (
	msgMissingToken   = "se requiere iniciar sesión"
	msgSessionExpired = "la sesión ha expirado, inicie sesión nuevamente"
)

type contextKey struct{}

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Get(token string) (*domain.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет токен сессии и кладет сессию в контекст запроса
func Auth(store SessionStore, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(r.Header.Get(SessionHeader))
			if token == "" {
				logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, SessionHeader)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			session, err := store.Get(token)
			if err != nil {
				logger.Warn("%s %s - Unknown or expired session: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgSessionExpired)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// WithSession возвращает контекст с сессией
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, contextKey{}, session)
}

// GetSession извлекает сессию из контекста
func GetSession(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(contextKey{}).(*domain.Session)
	return session, ok && session != nil
}
