package update_booking

import (
	"fmt"

	"github.com/m04kA/SMC-BookingCalendar/internal/service/bookings/models"
	"github.com/m04kA/SMC-BookingCalendar/pkg/types"
)

// UpdateBookingRequest HTTP request model, полная замена полей бронирования
type UpdateBookingRequest struct {
	Name       string   `json:"name"`
	Title      string   `json:"title,omitempty"`
	RoomID     string   `json:"roomId"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	TimeRanges []string `json:"timeRanges,omitempty"`
	Guests     int      `json:"guests,omitempty"`
	Status     string   `json:"status,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateBookingRequest) ToServiceRequest() (*models.BookingRequest, error) {
	start, err := types.ParseDate(r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("startDate: %w", err)
	}
	end, err := types.ParseDate(r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("endDate: %w", err)
	}

	return &models.BookingRequest{
		Name:       r.Name,
		Title:      r.Title,
		RoomID:     r.RoomID,
		StartDate:  start,
		EndDate:    end,
		TimeRanges: r.TimeRanges,
		Guests:     r.Guests,
		Status:     r.Status,
	}, nil
}
