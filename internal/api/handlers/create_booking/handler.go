package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-BookingCalendar/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректная дата бронирования"
	msgInvalidInput       = "некорректные данные бронирования"
	msgMutationFailed     = "не удалось создать бронирование"
	msgLoadFailed         = "бронирование создано, но список не удалось обновить"
)

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

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем body
	var req BookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	list, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookings.ErrMutationFailed):
			h.logger.Error("POST /bookings - Source rejected booking: %v", err)
			handlers.RespondBadGateway(w, msgMutationFailed)

		case errors.Is(err, bookings.ErrLoadFailed):
			h.logger.Error("POST /bookings - Refetch failed: %v", err)
			handlers.RespondBadGateway(w, msgLoadFailed)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: room=%s, generation=%d", serviceReq.RoomID, list.Generation)
	handlers.RespondJSON(w, http.StatusCreated, list)
}
