package get_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-BookingCalendar/internal/service/bookings"
)

const msgLoadFailed = "не удалось загрузить бронирования"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		if errors.Is(err, bookings.ErrLoadFailed) {
			h.logger.Error("GET /bookings - Bookings not loaded: %v", err)
			handlers.RespondBadGateway(w, msgLoadFailed)
			return
		}
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if list.Stale {
		h.logger.Warn("GET /bookings - Serving stale collection: generation=%d", list.Generation)
	}
	handlers.RespondJSON(w, http.StatusOK, list)
}
