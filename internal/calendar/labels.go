package calendar

import (
	"github.com/m04kA/SMC-BookingCalendar/internal/domain"
	"github.com/m04kA/SMC-BookingCalendar/pkg/types"
)

// VisibleRange подписи заголовка для текущего вида:
//
//	day   - "May 15, 2025" / "May 15, 2025"
//	week  - "May 11, 2025" / "May 17, 2025"
//	month - "May 2025" / "May 2025"
//	year  - "2025" / "2025"
func VisibleRange(view domain.View, anchor types.Date) domain.VisibleRange {
	switch view {
	case domain.ViewDay:
		label := anchor.Format(domain.TitleDayLayout)
		return domain.VisibleRange{StartLabel: label, EndLabel: label, Title: label}

	case domain.ViewWeek:
		start := startOfWeek(anchor)
		return domain.VisibleRange{
			StartLabel: start.Format(domain.TitleDayLayout),
			EndLabel:   start.AddDays(domain.WeekCells - 1).Format(domain.TitleDayLayout),
			Title:      anchor.Format(domain.TitleDayLayout),
		}

	case domain.ViewYear:
		label := anchor.Format(domain.TitleYearLayout)
		return domain.VisibleRange{StartLabel: label, EndLabel: label, Title: label}

	default:
		label := anchor.Format(domain.TitleMonthLayout)
		return domain.VisibleRange{StartLabel: label, EndLabel: label, Title: label}
	}
}
