package logout

import (
	"net/http"

	"github.com/m04kA/SMC-BookingCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-BookingCalendar/internal/session"
)

const msgUnauthorized = "требуется авторизация"

type Handler struct {
	manager SessionManager
	logger  Logger
}

func NewHandler(manager SessionManager, logger Logger) *Handler {
	return &Handler{
		manager: manager,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/logout
// Отзывает токен текущей сессии до истечения его срока
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /auth/logout - No session in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	h.manager.Revoke(s)

	h.logger.Info("POST /auth/logout - Session revoked: user_id=%s", s.UserID)
	w.WriteHeader(http.StatusNoContent)
}
