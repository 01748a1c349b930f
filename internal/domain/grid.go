package domain

import "github.com/m04kA/SMC-BookingCalendar/pkg/types"

// GridCell one calendar cell with the bookings overlapping its date
type GridCell struct {
	Date  types.Date
	Label string
	// InFocus is false for leading/trailing cells of the month view that belong to adjacent months
	InFocus  bool
	Bookings []Booking
}

// VisibleRange header labels for the current view
type VisibleRange struct {
	StartLabel string
	EndLabel   string
	Title      string
}

// Grid derived calendar state for one (view, anchor, bookings) combination
type Grid struct {
	View       View
	Anchor     types.Date
	Range      VisibleRange
	Cells      []GridCell
	Generation uint64
}
