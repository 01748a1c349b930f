package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingCalendar/internal/domain"
	"github.com/m04kA/SMC-BookingCalendar/internal/infra/snapshot"
)

// BookingSource источник бронирований: REST бэкенд или PostgreSQL
type BookingSource interface {
	FetchBookings(ctx context.Context) ([]domain.RawBooking, error)
	CreateBooking(ctx context.Context, in domain.BookingInput) error
	UpdateBooking(ctx context.Context, id string, in domain.BookingInput) error
	DeleteBooking(ctx context.Context, id string) error
}

// SnapshotStore хранилище последней загруженной коллекции
type SnapshotStore interface {
	Begin() snapshot.Ticket
	Commit(ticket snapshot.Ticket, bookings []domain.Booking) bool
	Fail(ticket snapshot.Ticket, err error)
	Current() (snapshot.Snapshot, bool)
	LastError() error
}

// Metrics интерфейс для метрик загрузки
type Metrics interface {
	ObserveRefresh(success bool, size int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
