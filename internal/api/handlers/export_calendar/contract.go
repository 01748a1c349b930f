package export_calendar

import (
	"context"

	"github.com/m04kA/SMC-BookingCalendar/internal/infra/snapshot"
)

type BookingsProvider interface {
	Snapshot(ctx context.Context) (snapshot.Snapshot, bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
