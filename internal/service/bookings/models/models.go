package models

import (
	"time"

	"github.com/m04kA/SMC-BookingCalendar/internal/domain"
	"github.com/m04kA/SMC-BookingCalendar/pkg/types"
)

// Request модели

// BookingRequest запрос на создание или изменение бронирования
type BookingRequest struct {
	Name       string     `json:"name" validate:"required,max=200"`
	Title      string     `json:"title" validate:"max=2000"`
	RoomID     string     `json:"roomId" validate:"required,max=64"`
	StartDate  types.Date `json:"startDate"`
	EndDate    types.Date `json:"endDate"`
	TimeRanges []string   `json:"timeRanges" validate:"omitempty,dive,required,max=64"`
	Guests     int        `json:"guests" validate:"gte=0,lte=10000"`
	Status     string     `json:"status" validate:"omitempty,max=32"`
}

// ToDomainInput конвертирует запрос в данные для источника
func (r *BookingRequest) ToDomainInput() domain.BookingInput {
	return domain.BookingInput{
		Name:       r.Name,
		Title:      r.Title,
		RoomID:     r.RoomID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		TimeRanges: r.TimeRanges,
		Guests:     r.Guests,
		Status:     r.Status,
	}
}

// Response модели

// BookingResponse нормализованное бронирование для клиента
type BookingResponse struct {
	ID               string     `json:"id"`
	BookingRef       string     `json:"bookingId,omitempty"`
	StartDate        types.Date `json:"startDate"`
	EndDate          types.Date `json:"endDate"`
	ParseError       string     `json:"parseError,omitempty"`
	TimeRanges       []string   `json:"timeRanges"`
	Start            string     `json:"start"`
	End              string     `json:"end"`
	Name             string     `json:"name"`
	Notes            string     `json:"notes,omitempty"`
	RoomName         string     `json:"roomName"`
	RoomLocation     string     `json:"roomLocation,omitempty"`
	PricePerHour     float64    `json:"pricePerHour,omitempty"`
	SpaceType        string     `json:"spaceType,omitempty"`
	GuestName        string     `json:"guestName,omitempty"`
	GuestEmail       string     `json:"guestEmail,omitempty"`
	Guests           int        `json:"guests,omitempty"`
	Status           string     `json:"status"`
	StatusTone       string     `json:"statusTone"`
	ColorIndex       int        `json:"colorIndex"`
	Color            string     `json:"color"`
	ServiceFeeAndTax float64    `json:"serviceFeeAndTax,omitempty"`
	TotalAmount      float64    `json:"totalAmount,omitempty"`
}

// BookingListResponse текущая коллекция бронирований.
// Stale=true означает, что последняя загрузка не удалась и отдаются ранее загруженные данные
type BookingListResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	Generation uint64            `json:"generation"`
	LoadedAt   time.Time         `json:"loadedAt"`
	Stale      bool              `json:"stale"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b domain.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		BookingRef:       b.BookingRef,
		StartDate:        b.StartDate,
		EndDate:          b.EndDate,
		ParseError:       b.ParseError,
		TimeRanges:       b.TimeRanges,
		Start:            b.DisplayStart,
		End:              b.DisplayEnd,
		Name:             b.DisplayName,
		Notes:            b.Notes,
		RoomName:         b.RoomName,
		RoomLocation:     b.RoomLocation,
		PricePerHour:     b.PricePerHour,
		SpaceType:        b.SpaceTypeName,
		GuestName:        b.GuestName,
		GuestEmail:       b.GuestEmail,
		Guests:           b.Guests,
		Status:           b.Status,
		StatusTone:       string(b.StatusTone),
		ColorIndex:       b.ColorIndex,
		Color:            b.Color,
		ServiceFeeAndTax: b.ServiceFeeAndTax,
		TotalAmount:      b.TotalAmount,
	}
}

// FromDomainBookingList конвертирует коллекцию, сохраняя порядок
func FromDomainBookingList(bookings []domain.Booking) []BookingResponse {
	res := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		res = append(res, FromDomainBooking(b))
	}
	return res
}
