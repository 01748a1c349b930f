package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-BookingCalendar/internal/service/bookings/models"
	"github.com/m04kA/SMC-BookingCalendar/internal/usecase/get_calendar"
	"github.com/m04kA/SMC-BookingCalendar/pkg/types"
)

// RangeResponse подписи заголовка календаря
type RangeResponse struct {
	StartLabel string `json:"startLabel"`
	EndLabel   string `json:"endLabel"`
	Title      string `json:"title"`
}

// CellResponse ячейка сетки
type CellResponse struct {
	Date     types.Date               `json:"date"`
	Label    string                   `json:"label"`
	InFocus  bool                     `json:"inFocus"`
	Bookings []models.BookingResponse `json:"bookings"`
}

// CalendarResponse HTTP модель сетки календаря
type CalendarResponse struct {
	View       string         `json:"view"`
	Anchor     types.Date     `json:"anchor"`
	Range      RangeResponse  `json:"range"`
	Cells      []CellResponse `json:"cells"`
	Generation uint64         `json:"generation"`
	LoadedAt   time.Time      `json:"loadedAt"`
	Stale      bool           `json:"stale"`
}

// NewCalendarResponse конвертирует ответ use case в HTTP модель
func NewCalendarResponse(resp *get_calendar.Response) *CalendarResponse {
	cells := make([]CellResponse, 0, len(resp.Cells))
	for _, c := range resp.Cells {
		cells = append(cells, CellResponse{
			Date:     c.Date,
			Label:    c.Label,
			InFocus:  c.InFocus,
			Bookings: models.FromDomainBookingList(c.Bookings),
		})
	}

	return &CalendarResponse{
		View:   resp.View.String(),
		Anchor: resp.Anchor,
		Range: RangeResponse{
			StartLabel: resp.Range.StartLabel,
			EndLabel:   resp.Range.EndLabel,
			Title:      resp.Range.Title,
		},
		Cells:      cells,
		Generation: resp.Generation,
		LoadedAt:   resp.LoadedAt,
		Stale:      resp.Stale,
	}
}
