package snapshot

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-BookingCalendar/internal/domain"
)

// Ticket номер загрузки, выданный Begin. Больший номер - более поздний запрос
type Ticket uint64

// Snapshot последняя принятая коллекция бронирований
type Snapshot struct {
	Generation uint64
	Bookings   []domain.Booking
	LoadedAt   time.Time
}

// Store хранит последнюю нормализованную коллекцию.
// Результат загрузки принимается, только если не был принят результат более позднего запроса.
type Store struct {
	mu        sync.RWMutex
	issued    Ticket
	committed Ticket
	current   *Snapshot
	lastErr   error
	now       func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// Begin выдаёт номер перед началом загрузки
func (s *Store) Begin() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued++
	return s.issued
}

// Commit сохраняет результат загрузки. Возвращает false, если уже принят результат более позднего запроса
func (s *Store) Commit(ticket Ticket, bookings []domain.Booking) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket <= s.committed {
		return false
	}

	if bookings == nil {
		bookings = []domain.Booking{}
	}

	s.committed = ticket
	s.current = &Snapshot{
		Generation: uint64(ticket),
		Bookings:   bookings,
		LoadedAt:   s.now(),
	}
	s.lastErr = nil
	return true
}

// Fail запоминает ошибку загрузки. Устаревшие ошибки игнорируются, принятая коллекция не затирается
func (s *Store) Fail(ticket Ticket, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket <= s.committed {
		return
	}
	s.lastErr = err
}

// Current возвращает последнюю принятую коллекцию, ok=false если загрузок ещё не было
func (s *Store) Current() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return Snapshot{}, false
	}
	return *s.current, true
}

// LastError ошибка последней неудачной загрузки, nil после успешной
func (s *Store) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
