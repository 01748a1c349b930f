package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-BookingCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-BookingCalendar/internal/session"
)

const (
	msgMissingToken = "требуется авторизация"
	msgInvalidToken = "недействительный или просроченный токен"
	msgForbidden    = "доступ запрещен"
)

// SessionManager проверяет токены и роли
type SessionManager interface {
	Parse(token string) (*session.Session, error)
	Authorize(s *session.Session) error
}

type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет Bearer токен и кладёт сессию в контекст.
// Пропускает дальше только пользователей с администраторской ролью
func Auth(manager SessionManager, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				logger.Warn("%s %s - Missing or malformed Authorization header", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			s, err := manager.Parse(token)
			if err != nil {
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				if errors.Is(err, session.ErrMissingToken) {
					handlers.RespondUnauthorized(w, msgMissingToken)
					return
				}
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			if err := manager.Authorize(s); err != nil {
				logger.Warn("%s %s - Access denied: user_id=%s, role=%s", r.Method, r.URL.Path, s.UserID, s.Role)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), s)))
		})
	}
}

// GetSession возвращает сессию, установленную Auth
func GetSession(ctx context.Context) (*session.Session, bool) {
	return session.FromContext(ctx)
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}
