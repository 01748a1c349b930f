package update_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-BookingCalendar/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректная дата бронирования"
	msgInvalidInput       = "некорректные данные бронирования"
	msgNotFound           = "бронирование не найдено"
	msgMutationFailed     = "не удалось обновить бронирование"
	msgLoadFailed         = "бронирование обновлено, но список не удалось обновить"
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

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := strings.TrimSpace(mux.Vars(r)["bookingId"])
	if bookingID == "" {
		h.logger.Warn("PUT /bookings/{id} - Empty booking ID")
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid date: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	list, err := h.service.Update(r.Context(), bookingID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Validation failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrMutationFailed):
			h.logger.Error("PUT /bookings/{id} - Source rejected update: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadGateway(w, msgMutationFailed)

		case errors.Is(err, bookings.ErrLoadFailed):
			h.logger.Error("PUT /bookings/{id} - Refetch failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadGateway(w, msgLoadFailed)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated: booking_id=%s, generation=%d", bookingID, list.Generation)
	handlers.RespondJSON(w, http.StatusOK, list)
}
