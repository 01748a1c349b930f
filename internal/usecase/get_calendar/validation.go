package get_calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BookingCalendar/internal/domain"
	"github.com/m04kA/SMC-BookingCalendar/pkg/types"
)

// parseAnchor разбирает опорную дату, пустая строка -> сегодня в часовом поясе сервиса
func parseAnchor(raw string, now time.Time, loc *time.Location) (types.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return types.DateOf(now.In(loc)), nil
	}

	anchor, err := types.ParseDate(raw)
	if err != nil {
		return types.Date{}, fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
	}
	return anchor, nil
}

// parseDirection разбирает направление шага, nil -> шага нет
func parseDirection(raw *string) (*domain.Direction, error) {
	if raw == nil {
		return nil, nil
	}

	dir, err := domain.ParseDirection(*raw)
	if err != nil {
		return nil, fmt.Errorf("%w: direction %q: %v", ErrInvalidInput, *raw, err)
	}
	return &dir, nil
}
