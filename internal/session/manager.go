package session

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims содержимое токена
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager проверяет HS256 токены и хранит отозванные идентификаторы до истечения их срока
type Manager struct {
	secret     []byte
	adminRoles map[string]struct{}

	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewManager(secret string, adminRoles []string) *Manager {
	roles := make(map[string]struct{}, len(adminRoles))
	for _, role := range adminRoles {
		roles[strings.ToLower(role)] = struct{}{}
	}

	return &Manager{
		secret:     []byte(secret),
		adminRoles: roles,
		revoked:    make(map[string]time.Time),
		now:        time.Now,
	}
}

// Issue выпускает токен. Используется для служебных клиентов и в тестах
func (m *Manager) Issue(userID, role string, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("%w: Issue - sign: %v", ErrInvalidToken, err)
	}
	return token, nil
}

// Parse проверяет токен и собирает из него сессию
func (m *Manager) Parse(tokenString string) (*Session, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	s := &Session{
		ID:     claims.ID,
		UserID: claims.Subject,
		Role:   claims.Role,
		Token:  tokenString,
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	if s.ID == "" {
		s.ID = tokenString
	}

	if m.isRevoked(s.ID) {
		return nil, ErrRevoked
	}

	return s, nil
}

// Authorize проверяет, что роль сессии входит в список администраторских
func (m *Manager) Authorize(s *Session) error {
	if _, ok := m.adminRoles[strings.ToLower(s.Role)]; !ok {
		return fmt.Errorf("%w: role=%q", ErrForbidden, s.Role)
	}
	return nil
}

// Revoke отзывает токен сессии (logout)
func (m *Manager) Revoke(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.purgeLocked()

	// нулевой срок: запись не удаляется
	m.revoked[s.ID] = s.ExpiresAt
}

func (m *Manager) isRevoked(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.revoked[id]
	return ok
}

// purgeLocked удаляет записи, срок которых истёк: такие токены и так не пройдут проверку
func (m *Manager) purgeLocked() {
	now := m.now()
	for id, expiresAt := range m.revoked {
		if !expiresAt.IsZero() && now.After(expiresAt) {
			delete(m.revoked, id)
		}
	}
}
