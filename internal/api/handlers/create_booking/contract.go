package create_booking

import (
	"context"

	"github.com/m04kA/SMC-BookingCalendar/internal/service/bookings/models"
)

type BookingService interface {
	Create(ctx context.Context, req *models.BookingRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
