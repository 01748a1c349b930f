package step_calendar

import (
	"context"
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
	got *get_calendar.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *get_calendar.Request) (*get_calendar.Response, error) {
	f.got = req
	anchor := types.NewDate(2025, 2, 28)
	return &get_calendar.Response{
		View:   domain.ViewMonth,
		Anchor: anchor,
		Range:  calendar.VisibleRange(domain.ViewMonth, anchor),
		Cells:  calendar.BuildCells(domain.ViewMonth, anchor, nil),
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_PassesDirection(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/step?view=month&date=2025-01-31&direction=next", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got.Direction)
	assert.Equal(t, "next", *uc.got.Direction)
	assert.Contains(t, rec.Body.String(), `"anchor":"2025-02-28"`)
}

func TestHandler_MissingDirection(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/step?view=month", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}
