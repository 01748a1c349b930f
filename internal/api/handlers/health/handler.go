package health

import (
	"net/http"

	"github.com/m04kA/SMC-BookingCalendar/internal/api/handlers"
)

type Response struct {
	Status string `json:"status"`
}

// Handle GET /api/v1/health
func Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{Status: "ok"})
}
