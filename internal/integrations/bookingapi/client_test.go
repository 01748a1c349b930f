package bookingapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingCalendar/internal/domain"
	"github.com/m04kA/SMC-BookingCalendar/internal/session"
	"github.com/m04kA/SMC-BookingCalendar/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", time.Second, "service-token", nopLogger{})
}

func writeEnvelope(w http.ResponseWriter, status int, env map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func TestClient_FetchBookings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/booking/getAllBookings", r.URL.Path)
		assert.Equal(t, "Bearer service-token", r.Header.Get("Authorization"))

		writeEnvelope(w, http.StatusOK, map[string]interface{}{
			"success":    true,
			"statusCode": 200,
			"data": []map[string]interface{}{
				{"_id": "b1", "start_date": "2025-05-10T00:00:00.000Z", "end_date": "2025-05-12T00:00:00.000Z", "name": "One", "roomId": map[string]interface{}{"_id": "r1", "name": "Blue"}},
				{"_id": "b2", "start_date": "2025-05-11", "end_date": "2025-05-11", "name": "Two", "roomId": "r2"},
			},
		})
	})

	bookings, err := client.FetchBookings(context.Background())

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "b1", bookings[0].ID)
	assert.Equal(t, "Blue", bookings[0].Room.Name)
	assert.Equal(t, "r2", bookings[1].Room.ID)
}

func TestClient_FetchBookings_EmptyData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, map[string]interface{}{"success": true, "data": nil})
	})

	bookings, err := client.FetchBookings(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestClient_FetchBookings_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "success false",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(w, http.StatusOK, map[string]interface{}{"success": false, "message": "db down"})
			},
			wantErr: ErrRejected,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: ErrInvalidResponse,
		},
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			wantErr: ErrUnauthorized,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>"))
			},
			wantErr: ErrInvalidResponse,
		},
		{
			name: "data is not a list",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(w, http.StatusOK, map[string]interface{}{"success": true, "data": "oops"})
			},
			wantErr: ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)

			_, err := client.FetchBookings(context.Background())

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_FetchBookings_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewClient(srv.URL, time.Second, "", nopLogger{})

	_, err := client.FetchBookings(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestClient_ForwardsSessionToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, map[string]interface{}{"success": true, "data": []interface{}{}})
	})

	ctx := session.WithSession(context.Background(), &session.Session{Token: "user-token"})
	_, err := client.FetchBookings(ctx)

	require.NoError(t, err)
}

func TestClient_CreateBooking(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/booking/booking-create", r.URL.Path)

		var payload BookingPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Team offsite", payload.Name)
		assert.Equal(t, "r1", payload.RoomID)
		assert.Equal(t, "2025-05-10", payload.StartDate)
		assert.Equal(t, "2025-05-12", payload.EndDate)
		assert.Equal(t, []string{}, payload.TimeRanges)

		writeEnvelope(w, http.StatusCreated, map[string]interface{}{"success": true, "statusCode": 201})
	})

	err := client.CreateBooking(context.Background(), domain.BookingInput{
		Name:      "Team offsite",
		RoomID:    "r1",
		StartDate: types.NewDate(2025, time.May, 10),
		EndDate:   types.NewDate(2025, time.May, 12),
	})

	assert.NoError(t, err)
}

func TestClient_CreateBooking_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, map[string]interface{}{"success": false, "message": "room is busy"})
	})

	err := client.CreateBooking(context.Background(), domain.BookingInput{Name: "x"})

	assert.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "room is busy")
}

func TestClient_UpdateBooking(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/booking/updateBooking/b1", r.URL.Path)
		writeEnvelope(w, http.StatusOK, map[string]interface{}{"success": true})
	})

	err := client.UpdateBooking(context.Background(), "b1", domain.BookingInput{Name: "x"})

	assert.NoError(t, err)
}

func TestClient_DeleteBooking(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		env     map[string]interface{}
		wantErr error
	}{
		{"ok", http.StatusOK, map[string]interface{}{"success": true, "statusCode": 200}, nil},
		{"body status not 200", http.StatusOK, map[string]interface{}{"success": true, "statusCode": 500, "message": "failed"}, ErrRejected},
		{"not found", http.StatusNotFound, map[string]interface{}{"success": false}, ErrBookingNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/booking/deleteBooking/b1", r.URL.Path)
				writeEnvelope(w, tt.status, tt.env)
			})

			err := client.DeleteBooking(context.Background(), "b1")

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
