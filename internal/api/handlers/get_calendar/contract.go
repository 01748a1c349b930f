package get_calendar

import (
	"context"

	"github.com/m04kA/SMC-BookingCalendar/internal/usecase/get_calendar"
)

type UseCase interface {
	Execute(ctx context.Context, req *get_calendar.Request) (*get_calendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
