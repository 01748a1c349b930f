package calendar

import (
	"sync"

	"github.com/m04kA/SMC-BookingCalendar/internal/domain"
	"github.com/m04kA/SMC-BookingCalendar/pkg/types"
)

// Navigator владеет состоянием календаря (вид, опорная дата) и последней
// загруженной коллекцией бронирований. Безопасен для конкурентного использования.
type Navigator struct {
	mu         sync.RWMutex
	view       domain.View
	anchor     types.Date
	bookings   []domain.Booking
	generation uint64
}

// NewNavigator создает навигатор. Неизвестный вид заменяется на domain.DefaultView
func NewNavigator(view domain.View, anchor types.Date) *Navigator {
	if !view.IsValid() {
		view = domain.DefaultView
	}
	return &Navigator{
		view:     view,
		anchor:   anchor,
		bookings: []domain.Booking{},
	}
}

// SetView меняет вид, опорная дата не меняется
func (n *Navigator) SetView(view domain.View) {
	if !view.IsValid() {
		view = domain.DefaultView
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.view = view
}

// Step сдвигает опорную дату на одну единицу текущего вида
func (n *Navigator) Step(direction domain.Direction) types.Date {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.anchor = StepAnchor(n.view, n.anchor, direction)
	return n.anchor
}

// SetBookings заменяет коллекцию целиком. Коллекция с поколением старше текущего
// отбрасывается, чтобы медленная старая загрузка не перетёрла более свежие данные.
func (n *Navigator) SetBookings(generation uint64, bookings []domain.Booking) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if generation < n.generation {
		return false
	}

	if bookings == nil {
		bookings = []domain.Booking{}
	}
	n.generation = generation
	n.bookings = bookings
	return true
}

func (n *Navigator) View() domain.View {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.view
}

func (n *Navigator) Anchor() types.Date {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.anchor
}

// VisibleRange подписи заголовка для текущего состояния
func (n *Navigator) VisibleRange() domain.VisibleRange {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return VisibleRange(n.view, n.anchor)
}

// CurrentGrid строит сетку для текущего состояния. Только чтение, можно вызывать сколько угодно раз
func (n *Navigator) CurrentGrid() domain.Grid {
	n.mu.RLock()
	view, anchor, bookings, generation := n.view, n.anchor, n.bookings, n.generation
	n.mu.RUnlock()

	return domain.Grid{
		View:       view,
		Anchor:     anchor,
		Range:      VisibleRange(view, anchor),
		Cells:      BuildCells(view, anchor, bookings),
		Generation: generation,
	}
}

// StepAnchor сдвиг даты на единицу вида:
// day ±1 день, week ±7 дней, month ±1 месяц, year ±1 год.
// Для month и year день прижимается к последнему дню целевого месяца.
func StepAnchor(view domain.View, anchor types.Date, direction domain.Direction) types.Date {
	sign := direction.Sign()

	switch view {
	case domain.ViewDay:
		return anchor.AddDays(sign)
	case domain.ViewWeek:
		return anchor.AddDays(sign * 7)
	case domain.ViewYear:
		return anchor.AddYears(sign)
	default:
		return anchor.AddMonths(sign)
	}
}
