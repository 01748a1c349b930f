package export_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-BookingCalendar/internal/export/ics"
	"github.com/m04kA/SMC-BookingCalendar/internal/service/bookings"
)

const msgLoadFailed = "не удалось загрузить бронирования"

type Handler struct {
	provider BookingsProvider
	feedName string
	logger   Logger
}

func NewHandler(provider BookingsProvider, feedName string, logger Logger) *Handler {
	return &Handler{
		provider: provider,
		feedName: feedName,
		logger:   logger,
	}
}

// Handle GET /api/v1/calendar.ics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	snap, _, err := h.provider.Snapshot(r.Context())
	if err != nil {
		if errors.Is(err, bookings.ErrLoadFailed) {
			h.logger.Error("GET /calendar.ics - Bookings not loaded: %v", err)
			handlers.RespondBadGateway(w, msgLoadFailed)
			return
		}
		h.logger.Error("GET /calendar.ics - Failed to get bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	feed := ics.Build(snap.Bookings, ics.Options{Name: h.feedName, Stamped: snap.LoadedAt})

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(feed))

	h.logger.Info("GET /calendar.ics - Feed exported: generation=%d, bookings=%d", snap.Generation, len(snap.Bookings))
}
