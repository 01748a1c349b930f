package domain

import (
	"bytes"
	"encoding/json"

	"github.com/m04kA/SMC-BookingCalendar/pkg/types"
)

// StatusTone presentation tone of a booking status badge
type StatusTone string

const (
	ToneSuccess StatusTone = "success"
	ToneWarning StatusTone = "warning"
	ToneDanger  StatusTone = "danger"
)

// Known status labels. The set is open: any other label is rendered with ToneDanger.
const (
	StatusBooked  = "Booked"
	StatusPending = "Pending"
)

// ToneForStatus maps a status label to its badge tone
func ToneForStatus(status string) StatusTone {
	switch status {
	case StatusBooked:
		return ToneSuccess
	case StatusPending:
		return ToneWarning
	default:
		return ToneDanger
	}
}

// RawBooking booking record as returned by the booking backend
type RawBooking struct {
	ID               string    `json:"_id"`
	BookingRef       string    `json:"bookingId,omitempty"`
	StartDate        string    `json:"start_date"`
	EndDate          string    `json:"end_date"`
	StartTime        string    `json:"start_time,omitempty"`
	TimeRanges       []string  `json:"timeRanges"`
	Name             string    `json:"name"`
	Title            string    `json:"title,omitempty"`
	Room             RawRoom   `json:"roomId"`
	SpaceType        RawNamed  `json:"spaceType"`
	User             RawPerson `json:"userId"`
	Guests           int       `json:"guests,omitempty"`
	Status           string    `json:"status"`
	ServiceFeeAndTax float64   `json:"serviceFeeAndTax,omitempty"`
	TotalAmount      float64   `json:"totalAmount,omitempty"`
}

// RawRoom populated room reference. The backend may send a bare id string instead.
type RawRoom struct {
	ID           string  `json:"_id,omitempty"`
	Name         string  `json:"name"`
	Location     string  `json:"location,omitempty"`
	PricePerHour float64 `json:"pricePerHour,omitempty"`
}

func (r *RawRoom) UnmarshalJSON(data []byte) error {
	if id, ok := bareID(data); ok {
		*r = RawRoom{ID: id}
		return nil
	}
	type plain RawRoom
	return json.Unmarshal(data, (*plain)(r))
}

// RawNamed populated reference with a name (space type)
type RawNamed struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`
}

func (r *RawNamed) UnmarshalJSON(data []byte) error {
	if id, ok := bareID(data); ok {
		*r = RawNamed{ID: id}
		return nil
	}
	type plain RawNamed
	return json.Unmarshal(data, (*plain)(r))
}

// RawPerson populated user reference
type RawPerson struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

func (r *RawPerson) UnmarshalJSON(data []byte) error {
	if id, ok := bareID(data); ok {
		*r = RawPerson{ID: id}
		return nil
	}
	type plain RawPerson
	return json.Unmarshal(data, (*plain)(r))
}

// bareID reports whether data is a JSON string or null instead of an object
func bareID(data []byte) (string, bool) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", true
	}
	if len(data) == 0 || data[0] != '"' {
		return "", false
	}
	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		return "", false
	}
	return id, true
}

// Booking normalized booking with derived display fields.
// Created once per fetched collection, never mutated afterwards.
type Booking struct {
	ID         string
	BookingRef string

	StartDate types.Date
	EndDate   types.Date
	// ParseError is set when the date range is unusable; such bookings never match a cell
	ParseError string

	TimeRanges   []string
	DisplayStart string
	DisplayEnd   string
	StartTime    string

	DisplayName   string
	RoomName      string
	RoomLocation  string
	PricePerHour  float64
	SpaceTypeName string
	GuestName     string
	GuestEmail    string
	Guests        int
	Notes         string

	Status     string
	StatusTone StatusTone

	ColorIndex int
	Color      string

	ServiceFeeAndTax float64
	TotalAmount      float64
}

// Matchable returns true if the booking has a valid inclusive date range
func (b *Booking) Matchable() bool {
	return b.ParseError == ""
}

// Covers returns true if date falls within [StartDate, EndDate]
func (b *Booking) Covers(date types.Date) bool {
	if !b.Matchable() {
		return false
	}
	return !date.Before(b.StartDate) && !date.After(b.EndDate)
}

// BookingInput payload for create/update calls to the booking backend
type BookingInput struct {
	Name       string
	Title      string
	RoomID     string
	StartDate  types.Date
	EndDate    types.Date
	TimeRanges []string
	Guests     int
	Status     string
}
