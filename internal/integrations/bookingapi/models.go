package bookingapi

import (
	"encoding/json"

	"github.com/m04kA/SMC-BookingCalendar/internal/domain"
)

// Envelope общий формат ответа бэкенда
type Envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
}

// BookingPayload тело запросов создания и изменения бронирования
type BookingPayload struct {
	Name       string   `json:"name"`
	Title      string   `json:"title,omitempty"`
	RoomID     string   `json:"roomId"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	TimeRanges []string `json:"timeRanges"`
	Guests     int      `json:"guests,omitempty"`
	Status     string   `json:"status,omitempty"`
}

func toPayload(in domain.BookingInput) BookingPayload {
	timeRanges := in.TimeRanges
	if timeRanges == nil {
		timeRanges = []string{}
	}

	return BookingPayload{
		Name:       in.Name,
		Title:      in.Title,
		RoomID:     in.RoomID,
		StartDate:  in.StartDate.String(),
		EndDate:    in.EndDate.String(),
		TimeRanges: timeRanges,
		Guests:     in.Guests,
		Status:     in.Status,
	}
}
