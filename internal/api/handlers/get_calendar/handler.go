package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-BookingCalendar/internal/usecase/get_calendar"
)

const (
	MsgInvalidInput = "некорректная дата или направление"
	MsgLoadFailed   = "не удалось загрузить бронирования"
)

type Handler struct {
	useCase UseCase
	logger  Logger
}

func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar?view=month&date=2025-05-15
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &get_calendar.Request{
		View: query.Get("view"),
		Date: query.Get("date"),
	}

	Respond(w, r, h.useCase, req, h.logger)
}

// Respond выполняет use case и пишет ответ. Общий для просмотра и навигации по календарю
func Respond(w http.ResponseWriter, r *http.Request, useCase UseCase, req *get_calendar.Request, logger Logger) {
	resp, err := useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, get_calendar.ErrInvalidInput):
			logger.Warn("%s %s - Invalid input: %v", r.Method, r.URL.Path, err)
			handlers.RespondBadRequest(w, MsgInvalidInput)

		case errors.Is(err, get_calendar.ErrLoadFailed):
			logger.Error("%s %s - Bookings not loaded: %v", r.Method, r.URL.Path, err)
			handlers.RespondBadGateway(w, MsgLoadFailed)

		default:
			logger.Error("%s %s - Failed to build calendar: %v", r.Method, r.URL.Path, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	logger.Info("%s %s - Calendar built: view=%s, anchor=%s", r.Method, r.URL.Path, resp.View, resp.Anchor)
	handlers.RespondJSON(w, http.StatusOK, NewCalendarResponse(resp))
}
