package calendar

import (
	"github.com/m04kA/SMC-BookingCalendar/internal/domain"
	"github.com/m04kA/SMC-BookingCalendar/pkg/types"
)

// IndexThreshold начиная с этого числа бронирований сетка строится через индекс по месяцам
const IndexThreshold = 256

// MatchBookings возвращает бронирования, диапазон которых [StartDate, EndDate] включает date.
// Порядок входного слайса сохраняется. Бронирования с некорректными датами не попадают никогда.
func MatchBookings(date types.Date, bookings []domain.Booking) []domain.Booking {
	matched := make([]domain.Booking, 0)
	for i := range bookings {
		if bookings[i].Covers(date) {
			matched = append(matched, bookings[i])
		}
	}
	return matched
}

// BuildCells строит ячейки сетки и раскладывает по ним бронирования.
// В виде year бронирования не раскладываются.
func BuildCells(view domain.View, anchor types.Date, bookings []domain.Booking) []domain.GridCell {
	if !view.IsValid() {
		view = domain.DefaultView
	}

	dates := BuildGrid(view, anchor)
	cells := make([]domain.GridCell, len(dates))

	match := MatchBookings
	if len(bookings) > IndexThreshold {
		match = newMonthIndex(bookings).match
	}

	for i, date := range dates {
		cells[i] = domain.GridCell{
			Date:     date,
			Label:    CellLabel(view, date),
			InFocus:  InFocus(view, anchor, date),
			Bookings: []domain.Booking{},
		}
		if view != domain.ViewYear {
			cells[i].Bookings = match(date, bookings)
		}
	}

	return cells
}

type monthKey struct {
	year  int
	month int
}

func keyOf(date types.Date) monthKey {
	return monthKey{year: date.Year(), month: int(date.Month())}
}

// monthIndex бронирования, разложенные по месяцам, которые они затрагивают.
// Внутри корзины индексы идут по возрастанию, поэтому порядок выборки сохраняется.
type monthIndex struct {
	bookings []domain.Booking
	buckets  map[monthKey][]int
}

func newMonthIndex(bookings []domain.Booking) *monthIndex {
	ix := &monthIndex{
		bookings: bookings,
		buckets:  make(map[monthKey][]int),
	}

	for i := range bookings {
		b := &bookings[i]
		if !b.Matchable() {
			continue
		}
		for m := b.StartDate.FirstOfMonth(); !m.After(b.EndDate); m = m.AddMonths(1) {
			key := keyOf(m)
			ix.buckets[key] = append(ix.buckets[key], i)
		}
	}

	return ix
}

// match то же, что MatchBookings, но просматривает только корзину месяца date
func (ix *monthIndex) match(date types.Date, _ []domain.Booking) []domain.Booking {
	matched := make([]domain.Booking, 0)
	for _, i := range ix.buckets[keyOf(date)] {
		if ix.bookings[i].Covers(date) {
			matched = append(matched, ix.bookings[i])
		}
	}
	return matched
}
