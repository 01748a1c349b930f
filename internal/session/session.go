package session

import (
	"context"
	"time"
)

// Session авторизованная сессия администратора
type Session struct {
	// ID идентификатор токена (jti), по нему выполняется отзыв
	ID        string
	UserID    string
	Role      string
	Token     string
	ExpiresAt time.Time
}

type contextKey struct{}

// WithSession кладёт сессию в контекст запроса
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext достаёт сессию из контекста
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}
