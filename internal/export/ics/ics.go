package ics

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/m04kA/SMC-BookingCalendar/internal/domain"
)

const (
	productID = "-//SMC//Booking Calendar//EN"
	uidDomain = "smc-booking-calendar"
)

// Options параметры фида
type Options struct {
	Name    string    // X-WR-CALNAME
	Stamped time.Time // DTSTAMP всех событий, обычно время загрузки коллекции
}

// Build собирает iCalendar фид: одно событие на весь день на каждое бронирование.
// Бронирования с некорректными датами пропускаются, как и в сетке календаря.
// DTEND по RFC 5545 не включается в событие, поэтому равен дню после окончания.
func Build(bookings []domain.Booking, opts Options) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	if opts.Name != "" {
		cal.SetXWRCalName(opts.Name)
	}

	stamp := opts.Stamped.UTC()
	if opts.Stamped.IsZero() {
		stamp = time.Now().UTC()
	}

	for i := range bookings {
		b := &bookings[i]
		if !b.Matchable() {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("%s@%s", b.ID, uidDomain))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(b.StartDate.Time())
		event.SetAllDayEndAt(b.EndDate.AddDays(1).Time())
		event.SetSummary(summary(b))
		event.SetDescription(description(b))
		if b.RoomLocation != "" {
			event.SetLocation(b.RoomLocation)
		}
		event.SetStatus(eventStatus(b.Status))
	}

	return cal.Serialize()
}

func summary(b *domain.Booking) string {
	switch {
	case b.RoomName != "" && b.DisplayName != "":
		return b.RoomName + ": " + b.DisplayName
	case b.RoomName != "":
		return b.RoomName
	default:
		return b.DisplayName
	}
}

func description(b *domain.Booking) string {
	lines := []string{
		fmt.Sprintf("Time: %s - %s", b.DisplayStart, b.DisplayEnd),
		fmt.Sprintf("Status: %s", b.Status),
	}
	if b.GuestName != "" {
		lines = append(lines, fmt.Sprintf("Guest: %s", b.GuestName))
	}
	if b.Notes != "" {
		lines = append(lines, b.Notes)
	}
	return strings.Join(lines, "\n")
}

func eventStatus(status string) ical.ObjectStatus {
	switch status {
	case domain.StatusBooked:
		return ical.ObjectStatusConfirmed
	case domain.StatusPending:
		return ical.ObjectStatusTentative
	default:
		return ical.ObjectStatusCancelled
	}
}
