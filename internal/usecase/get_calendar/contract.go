package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingCalendar/internal/infra/snapshot"
)

// BookingsProvider источник последней загруженной коллекции
type BookingsProvider interface {
	Snapshot(ctx context.Context) (snapshot.Snapshot, bool, error)
}

// Metrics интерфейс для метрик построения сетки
type Metrics interface {
	ObserveGridBuild(view string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
