package step_calendar

import (
	"net/http"

	"github.com/m04kA/SMC-BookingCalendar/internal/api/handlers"
	getCalendarHandler "github.com/m04kA/SMC-BookingCalendar/internal/api/handlers/get_calendar"
	"github.com/m04kA/SMC-BookingCalendar/internal/usecase/get_calendar"
)

const msgMissingDirection = "не указано направление (next или prev)"

type Handler struct {
	useCase getCalendarHandler.UseCase
	logger  getCalendarHandler.Logger
}

func NewHandler(useCase getCalendarHandler.UseCase, logger getCalendarHandler.Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/step?view=month&date=2025-01-31&direction=next
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	direction := query.Get("direction")
	if direction == "" {
		h.logger.Warn("GET /calendar/step - Missing direction")
		handlers.RespondBadRequest(w, msgMissingDirection)
		return
	}

	req := &get_calendar.Request{
		View:      query.Get("view"),
		Date:      query.Get("date"),
		Direction: &direction,
	}

	getCalendarHandler.Respond(w, r, h.useCase, req, h.logger)
}
