package ics

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingCalendar/internal/calendar"
	"github.com/m04kA/SMC-BookingCalendar/internal/domain"
)

func testBookings() []domain.Booking {
	return calendar.Normalize([]domain.RawBooking{
		{
			ID:         "b1",
			StartDate:  "2025-05-10T00:00:00.000Z",
			EndDate:    "2025-05-12T00:00:00.000Z",
			TimeRanges: []string{"09:00", "10:00"},
			Name:       "Team offsite",
			Room:       domain.RawRoom{Name: "Blue", Location: "Floor 2"},
			Status:     "Booked",
		},
		{ID: "broken", StartDate: "nope", EndDate: "2025-05-12", Name: "Broken"},
		{ID: "b2", StartDate: "2025-05-31", EndDate: "2025-05-31", Name: "Call", Status: "Pending"},
	})
}

func TestBuild(t *testing.T) {
	feed := Build(testBookings(), Options{Name: "Bookings", Stamped: time.Date(2025, 5, 15, 9, 0, 0, 0, time.UTC)})

	cal, err := ical.ParseCalendar(strings.NewReader(feed))
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2)

	first := events[0]
	assert.Equal(t, "b1@smc-booking-calendar", first.GetProperty(ical.ComponentPropertyUniqueId).Value)
	assert.Equal(t, "Blue: Team offsite", first.GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "Floor 2", first.GetProperty(ical.ComponentPropertyLocation).Value)
	assert.Equal(t, "20250510", first.GetProperty(ical.ComponentPropertyDtStart).Value)
	assert.Equal(t, "20250513", first.GetProperty(ical.ComponentPropertyDtEnd).Value)
	assert.Equal(t, string(ical.ObjectStatusConfirmed), first.GetProperty(ical.ComponentPropertyStatus).Value)

	second := events[1]
	assert.Equal(t, "20250531", second.GetProperty(ical.ComponentPropertyDtStart).Value)
	assert.Equal(t, "20250601", second.GetProperty(ical.ComponentPropertyDtEnd).Value)
	assert.Equal(t, string(ical.ObjectStatusTentative), second.GetProperty(ical.ComponentPropertyStatus).Value)
	assert.Nil(t, second.GetProperty(ical.ComponentPropertyLocation))
}

func TestBuild_Empty(t *testing.T) {
	feed := Build(nil, Options{})

	assert.Contains(t, feed, "BEGIN:VCALENDAR")
	assert.NotContains(t, feed, "BEGIN:VEVENT")
}

func TestDescription(t *testing.T) {
	b := testBookings()[2]

	assert.Equal(t, "Time: N/A - N/A\nStatus: Pending", description(&b))
}
