package logout

import (
	"github.com/m04kA/SMC-BookingCalendar/internal/session"
)

type SessionManager interface {
	Revoke(s *session.Session)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
