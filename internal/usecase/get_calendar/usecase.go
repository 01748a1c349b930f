package get_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BookingCalendar/internal/calendar"
	"github.com/m04kA/SMC-BookingCalendar/internal/domain"
	"github.com/m04kA/SMC-BookingCalendar/internal/service/bookings"
)

// UseCase use case построения сетки календаря
type UseCase struct {
	provider     BookingsProvider
	metrics      Metrics
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// location - часовой пояс, в котором определяется "сегодня"
func NewUseCase(
	provider BookingsProvider,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		provider:     provider,
		metrics:      metrics,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит сетку для вида и опорной даты, при необходимости сдвигая дату на один шаг
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Вид: неизвестное значение заменяется на month
	view, ok := domain.ParseView(req.View)
	if !ok && req.View != "" {
		uc.logger.Warn("GetCalendar: unknown view=%q, falling back to %s", req.View, view)
	}

	// 2. Опорная дата и шаг
	anchor, err := parseAnchor(req.Date, uc.timeProvider.Now(), uc.location)
	if err != nil {
		uc.logger.Warn("GetCalendar: %v", err)
		return nil, err
	}

	direction, err := parseDirection(req.Direction)
	if err != nil {
		uc.logger.Warn("GetCalendar: %v", err)
		return nil, err
	}

	nav := calendar.NewNavigator(view, anchor)
	if direction != nil {
		nav.Step(*direction)
	}

	// 3. Последняя загруженная коллекция
	snap, stale, err := uc.provider.Snapshot(ctx)
	if err != nil {
		if errors.Is(err, bookings.ErrLoadFailed) {
			uc.logger.Error("GetCalendar: bookings not loaded: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
		}
		uc.logger.Error("GetCalendar: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}
	nav.SetBookings(snap.Generation, snap.Bookings)

	// 4. Сетка
	grid := nav.CurrentGrid()
	uc.metrics.ObserveGridBuild(grid.View.String())

	uc.logger.Info("GetCalendar: view=%s, anchor=%s, cells=%d, generation=%d",
		grid.View, grid.Anchor, len(grid.Cells), grid.Generation)

	return &Response{
		View:       grid.View,
		Anchor:     grid.Anchor,
		Range:      grid.Range,
		Cells:      grid.Cells,
		Generation: grid.Generation,
		LoadedAt:   snap.LoadedAt,
		Stale:      stale,
	}, nil
}
