package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-BookingCalendar/internal/calendar"
	"github.com/m04kA/SMC-BookingCalendar/internal/domain"
	"github.com/m04kA/SMC-BookingCalendar/internal/infra/snapshot"
	bookingRepo "github.com/m04kA/SMC-BookingCalendar/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BookingCalendar/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-BookingCalendar/internal/service/bookings/models"
)

// Service сервис для работы с коллекцией бронирований
type Service struct {
	source   BookingSource
	store    SnapshotStore
	metrics  Metrics
	validate *validator.Validate
	logger   Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	source BookingSource,
	store SnapshotStore,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		source:   source,
		store:    store,
		metrics:  metrics,
		validate: newValidator(),
		logger:   logger,
	}
}

// Refresh перезагружает коллекцию целиком: загрузка, нормализация, фиксация в хранилище.
// Если за время загрузки успел завершиться более поздний запрос, результат отбрасывается.
func (s *Service) Refresh(ctx context.Context) (snapshot.Snapshot, error) {
	ticket := s.store.Begin()
	start := time.Now()

	raw, err := s.source.FetchBookings(ctx)
	if err != nil {
		s.store.Fail(ticket, err)
		s.metrics.ObserveRefresh(false, 0, time.Since(start))
		s.logger.Error("Refresh: fetch failed, ticket=%d: %v", ticket, err)
		return snapshot.Snapshot{}, fmt.Errorf("%w: Refresh - fetch: %v", ErrLoadFailed, err)
	}

	normalized := calendar.Normalize(raw)
	if !s.store.Commit(ticket, normalized) {
		s.logger.Warn("Refresh: result of ticket=%d discarded, newer collection already committed", ticket)
	} else {
		s.logMalformed(normalized)
	}
	current, _ := s.store.Current()
	s.metrics.ObserveRefresh(true, len(current.Bookings), time.Since(start))

	s.logger.Info("Refresh: generation=%d, bookings=%d", current.Generation, len(current.Bookings))
	return current, nil
}

// Snapshot возвращает последнюю загруженную коллекцию, при первом обращении загружает её.
// stale=true, если последняя загрузка не удалась и отдаются ранее загруженные данные.
func (s *Service) Snapshot(ctx context.Context) (snap snapshot.Snapshot, stale bool, err error) {
	if current, ok := s.store.Current(); ok {
		return current, s.store.LastError() != nil, nil
	}

	snap, err = s.Refresh(ctx)
	if err != nil {
		return snapshot.Snapshot{}, false, err
	}
	return snap, false, nil
}

// List возвращает нормализованную коллекцию в порядке загрузки
func (s *Service) List(ctx context.Context) (*models.BookingListResponse, error) {
	snap, stale, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return toListResponse(snap, stale), nil
}

// Create создает бронирование и перезагружает коллекцию
func (s *Service) Create(ctx context.Context, req *models.BookingRequest) (*models.BookingListResponse, error) {
	if err := s.validateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	s.logger.Info("Create: room=%s, %s..%s", req.RoomID, req.StartDate, req.EndDate)
	if err := s.source.CreateBooking(ctx, req.ToDomainInput()); err != nil {
		return nil, s.mutationError("Create", "", err)
	}

	return s.refetchAfterMutation(ctx, "Create")
}

// Update изменяет бронирование и перезагружает коллекцию
func (s *Service) Update(ctx context.Context, id string, req *models.BookingRequest) (*models.BookingListResponse, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := s.validateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for id=%s: %v", id, err)
		return nil, err
	}

	s.logger.Info("Update: id=%s, room=%s, %s..%s", id, req.RoomID, req.StartDate, req.EndDate)
	if err := s.source.UpdateBooking(ctx, id, req.ToDomainInput()); err != nil {
		return nil, s.mutationError("Update", id, err)
	}

	return s.refetchAfterMutation(ctx, "Update")
}

// Delete удаляет бронирование и перезагружает коллекцию
func (s *Service) Delete(ctx context.Context, id string) (*models.BookingListResponse, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	s.logger.Info("Delete: id=%s", id)
	if err := s.source.DeleteBooking(ctx, id); err != nil {
		return nil, s.mutationError("Delete", id, err)
	}

	return s.refetchAfterMutation(ctx, "Delete")
}

// refetchAfterMutation после успешного изменения коллекция перезагружается целиком.
// Ошибка перезагрузки не отменяет изменение: отдаются прежние данные с пометкой stale.
func (s *Service) refetchAfterMutation(ctx context.Context, op string) (*models.BookingListResponse, error) {
	snap, err := s.Refresh(ctx)
	if err == nil {
		return toListResponse(snap, false), nil
	}

	current, ok := s.store.Current()
	if !ok {
		s.logger.Warn("%s: mutation applied but refetch failed and no collection is loaded", op)
		return nil, err
	}

	s.logger.Warn("%s: mutation applied, serving stale collection generation=%d", op, current.Generation)
	return toListResponse(current, true), nil
}

func (s *Service) mutationError(op, id string, err error) error {
	if errors.Is(err, bookingapi.ErrBookingNotFound) || errors.Is(err, bookingRepo.ErrBookingNotFound) {
		s.logger.Warn("%s: booking id=%s not found", op, id)
		return ErrBookingNotFound
	}

	s.logger.Error("%s: source error for booking id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - source error: %v", ErrMutationFailed, op, err)
}

// logMalformed бронирования с некорректными датами не попадают в сетку, о них пишется в лог
func (s *Service) logMalformed(bookings []domain.Booking) {
	for i := range bookings {
		if !bookings[i].Matchable() {
			s.logger.Warn("Refresh: booking id=%s excluded from calendar: %s", bookings[i].ID, bookings[i].ParseError)
		}
	}
}

func toListResponse(snap snapshot.Snapshot, stale bool) *models.BookingListResponse {
	return &models.BookingListResponse{
		Bookings:   models.FromDomainBookingList(snap.Bookings),
		Generation: snap.Generation,
		LoadedAt:   snap.LoadedAt,
		Stale:      stale,
	}
}
