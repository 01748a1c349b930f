package get_calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingCalendar/internal/calendar"
	"github.com/m04kA/SMC-BookingCalendar/internal/domain"
	"github.com/m04kA/SMC-BookingCalendar/internal/usecase/get_calendar"
	"github.com/m04kA/SMC-BookingCalendar/pkg/types"
)

type fakeUseCase struct {
	got  *get_calendar.Request
	resp *get_calendar.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *get_calendar.Request) (*get_calendar.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func dayResponse() *get_calendar.Response {
	anchor := types.NewDate(2025, 5, 10)
	bookings := calendar.Normalize([]domain.RawBooking{{ID: "a", StartDate: "2025-05-10", EndDate: "2025-05-12", Name: "A"}})
	return &get_calendar.Response{
		View:       domain.ViewDay,
		Anchor:     anchor,
		Range:      calendar.VisibleRange(domain.ViewDay, anchor),
		Cells:      calendar.BuildCells(domain.ViewDay, anchor, bookings),
		Generation: 2,
	}
}

func TestHandler_OK(t *testing.T) {
	uc := &fakeUseCase{resp: dayResponse()}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar?view=day&date=2025-05-10", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "day", uc.got.View)
	assert.Equal(t, "2025-05-10", uc.got.Date)
	assert.Nil(t, uc.got.Direction)

	var body CalendarResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "day", body.View)
	assert.Equal(t, "May 10, 2025", body.Range.Title)
	require.Len(t, body.Cells, 1)
	assert.Equal(t, "10", body.Cells[0].Label)
	require.Len(t, body.Cells[0].Bookings, 1)
	assert.Equal(t, "a", body.Cells[0].Bookings[0].ID)
	assert.Equal(t, "N/A", body.Cells[0].Bookings[0].Start)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", fmt.Errorf("%w: date", get_calendar.ErrInvalidInput), http.StatusBadRequest},
		{"load failed", fmt.Errorf("%w: timeout", get_calendar.ErrLoadFailed), http.StatusBadGateway},
		{"internal", get_calendar.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
