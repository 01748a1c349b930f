package calendar

import (
	"time"

	"github.com/m04kA/SMC-BookingCalendar/internal/domain"
	"github.com/m04kA/SMC-BookingCalendar/pkg/types"
)

// BuildGrid возвращает даты ячеек для вида view вокруг даты anchor.
//
//   - day: одна дата - сам anchor
//   - week: 7 дней с воскресенья, предшествующего anchor (или равного ему)
//   - month: 42 дня (6 недель) с воскресенья перед первым числом месяца anchor
//   - year: первые числа всех 12 месяцев года anchor
//
// Неизвестный вид обрабатывается как month. Функция чистая.
func BuildGrid(view domain.View, anchor types.Date) []types.Date {
	switch view {
	case domain.ViewDay:
		return []types.Date{anchor}

	case domain.ViewWeek:
		return consecutiveDays(startOfWeek(anchor), domain.WeekCells)

	case domain.ViewYear:
		dates := make([]types.Date, 0, domain.YearCells)
		for m := time.January; m <= time.December; m++ {
			dates = append(dates, types.NewDate(anchor.Year(), m, 1))
		}
		return dates

	default:
		return consecutiveDays(startOfWeek(anchor.FirstOfMonth()), domain.MonthCells)
	}
}

// CellLabel подпись ячейки: число месяца, для year - сокращённое название месяца
func CellLabel(view domain.View, date types.Date) string {
	if view == domain.ViewYear {
		return date.Format(domain.CellMonthLayout)
	}
	return date.Format(domain.CellDayLayout)
}

// InFocus false для ячеек месячной сетки, относящихся к соседним месяцам
func InFocus(view domain.View, anchor, date types.Date) bool {
	if view != domain.ViewMonth && view.IsValid() {
		return true
	}
	return date.SameMonth(anchor)
}

// startOfWeek воскресенье, предшествующее date (или сама date, если это воскресенье)
func startOfWeek(date types.Date) types.Date {
	return date.AddDays(-int(date.Weekday()))
}

func consecutiveDays(from types.Date, count int) []types.Date {
	dates := make([]types.Date, count)
	for i := range dates {
		dates[i] = from.AddDays(i)
	}
	return dates
}
