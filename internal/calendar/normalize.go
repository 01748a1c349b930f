package calendar

import (
	"fmt"

	"github.com/m04kA/SMC-BookingCalendar/internal/domain"
	"github.com/m04kA/SMC-BookingCalendar/pkg/types"
)

// Normalize вычисляет отображаемые поля для всей загруженной коллекции.
// Цвет назначается по позиции в выборке (index mod PaletteSize), поэтому
// нормализация всегда выполняется заново для всей коллекции.
func Normalize(raw []domain.RawBooking) []domain.Booking {
	bookings := make([]domain.Booking, len(raw))
	for i := range raw {
		bookings[i] = normalizeOne(i, raw[i])
	}
	return bookings
}

func normalizeOne(index int, r domain.RawBooking) domain.Booking {
	colorIndex := index % domain.PaletteSize

	b := domain.Booking{
		ID:               r.ID,
		BookingRef:       r.BookingRef,
		TimeRanges:       r.TimeRanges,
		DisplayStart:     domain.NoTimeRange,
		DisplayEnd:       domain.NoTimeRange,
		StartTime:        r.StartTime,
		DisplayName:      r.Name,
		RoomName:         r.Room.Name,
		RoomLocation:     r.Room.Location,
		PricePerHour:     r.Room.PricePerHour,
		SpaceTypeName:    r.SpaceType.Name,
		GuestName:        r.User.Name,
		GuestEmail:       r.User.Email,
		Guests:           r.Guests,
		Notes:            r.Title,
		Status:           r.Status,
		StatusTone:       domain.ToneForStatus(r.Status),
		ColorIndex:       colorIndex,
		Color:            domain.Palette[colorIndex],
		ServiceFeeAndTax: r.ServiceFeeAndTax,
		TotalAmount:      r.TotalAmount,
	}

	if b.TimeRanges == nil {
		b.TimeRanges = []string{}
	}
	if n := len(r.TimeRanges); n > 0 {
		b.DisplayStart = r.TimeRanges[0]
		b.DisplayEnd = r.TimeRanges[n-1]
	}

	b.StartDate, b.EndDate, b.ParseError = parseRange(r.StartDate, r.EndDate)
	return b
}

// parseRange разбирает диапазон дат. Непустая причина означает, что бронирование
// не участвует в раскладке по ячейкам.
func parseRange(startRaw, endRaw string) (start, end types.Date, reason string) {
	start, err := types.ParseDate(startRaw)
	if err != nil {
		return types.Date{}, types.Date{}, fmt.Sprintf("invalid start_date: %v", err)
	}

	end, err = types.ParseDate(endRaw)
	if err != nil {
		return start, types.Date{}, fmt.Sprintf("invalid end_date: %v", err)
	}

	if end.Before(start) {
		return start, end, fmt.Sprintf("end_date %s is before start_date %s", end, start)
	}

	return start, end, ""
}
