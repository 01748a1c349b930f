package snapshot

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingCalendar/internal/domain"
)

func bookings(ids ...string) []domain.Booking {
	res := make([]domain.Booking, len(ids))
	for i, id := range ids {
		res[i] = domain.Booking{ID: id}
	}
	return res
}

func TestStore_EmptyUntilFirstCommit(t *testing.T) {
	s := NewStore()

	_, ok := s.Current()
	assert.False(t, ok)
	assert.NoError(t, s.LastError())
}

func TestStore_LatestRequestWins(t *testing.T) {
	s := NewStore()

	slow := s.Begin()
	fast := s.Begin()

	require.True(t, s.Commit(fast, bookings("new")))
	assert.False(t, s.Commit(slow, bookings("old")))

	snap, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, uint64(fast), snap.Generation)
	require.Len(t, snap.Bookings, 1)
	assert.Equal(t, "new", snap.Bookings[0].ID)
}

func TestStore_InOrderCommits(t *testing.T) {
	s := NewStore()

	first := s.Begin()
	second := s.Begin()

	assert.True(t, s.Commit(first, bookings("a")))
	assert.True(t, s.Commit(second, bookings("b")))

	snap, _ := s.Current()
	assert.Equal(t, "b", snap.Bookings[0].ID)
}

func TestStore_EmptyCollectionIsValid(t *testing.T) {
	s := NewStore()

	require.True(t, s.Commit(s.Begin(), nil))

	snap, ok := s.Current()
	require.True(t, ok)
	assert.NotNil(t, snap.Bookings)
	assert.Empty(t, snap.Bookings)
}

func TestStore_FailKeepsPreviousSnapshot(t *testing.T) {
	s := NewStore()
	loadedAt := time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return loadedAt }

	require.True(t, s.Commit(s.Begin(), bookings("a")))

	errBackend := errors.New("backend down")
	s.Fail(s.Begin(), errBackend)

	snap, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "a", snap.Bookings[0].ID)
	assert.Equal(t, loadedAt, snap.LoadedAt)
	assert.ErrorIs(t, s.LastError(), errBackend)
}

func TestStore_StaleFailureIgnored(t *testing.T) {
	s := NewStore()

	slow := s.Begin()
	fast := s.Begin()
	require.True(t, s.Commit(fast, bookings("a")))

	s.Fail(slow, errors.New("timeout"))

	assert.NoError(t, s.LastError())
}

func TestStore_CommitClearsError(t *testing.T) {
	s := NewStore()

	s.Fail(s.Begin(), errors.New("timeout"))
	require.Error(t, s.LastError())

	require.True(t, s.Commit(s.Begin(), bookings("a")))
	assert.NoError(t, s.LastError())
}
