package session

import "errors"

var (
	// ErrMissingToken возвращается, когда запрос пришёл без токена
	ErrMissingToken = errors.New("session: missing token")

	// ErrInvalidToken возвращается, когда токен не прошёл проверку подписи или срока действия
	ErrInvalidToken = errors.New("session: invalid token")

	// ErrRevoked возвращается для токена, отозванного через logout
	ErrRevoked = errors.New("session: token revoked")

	// ErrForbidden возвращается, когда роль пользователя не допускается
	ErrForbidden = errors.New("session: role not allowed")
)
