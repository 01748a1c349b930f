package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-BookingCalendar/internal/domain"
	"github.com/m04kA/SMC-BookingCalendar/pkg/types"
)

// Request модель запроса сетки календаря
type Request struct {
	View      string  // Вид (day, week, month, year). Неизвестный вид -> month
	Date      string  // Опорная дата YYYY-MM-DD, пустая -> сегодня
	Direction *string // Шаг навигации next/prev (опционально)
}

// Response модель ответа с сеткой
type Response struct {
	View       domain.View
	Anchor     types.Date
	Range      domain.VisibleRange
	Cells      []domain.GridCell
	Generation uint64    // Поколение коллекции, по которой построена сетка
	LoadedAt   time.Time // Время загрузки коллекции
	Stale      bool      // Последняя загрузка не удалась, показаны прежние данные
}
