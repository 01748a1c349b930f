package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-BookingCalendar/internal/infra/snapshot"
)

// DefaultSpec период фоновой перезагрузки бронирований
const DefaultSpec = "*/5 * * * *"

// Refresher перезагружает коллекцию бронирований
type Refresher interface {
	Refresh(ctx context.Context) (snapshot.Snapshot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler периодически перезагружает коллекцию по cron-расписанию.
// Запуск пропускается, если предыдущий ещё не завершился.
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	timeout   time.Duration
	logger    Logger
}

// New создает планировщик. timeout ограничивает одну перезагрузку
func New(spec string, timeout time.Duration, refresher Refresher, logger Logger) (*Scheduler, error) {
	if spec == "" {
		spec = DefaultSpec
	}

	cl := cronLogger{logger}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		refresher: refresher,
		timeout:   timeout,
		logger:    logger,
	}

	if _, err := s.cron.AddFunc(spec, s.runOnce); err != nil {
		return nil, fmt.Errorf("scheduler: invalid spec %q: %w", spec, err)
	}

	return s, nil
}

// Start запускает планировщик в фоне
func (s *Scheduler) Start() {
	s.logger.Info("Refresh scheduler started")
	s.cron.Start()
}

// Stop останавливает планировщик и ждёт завершения текущей перезагрузки, но не дольше ctx
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("Refresh scheduler stopped")
	case <-ctx.Done():
		s.logger.Error("Refresh scheduler stop timed out: %v", ctx.Err())
	}
}

func (s *Scheduler) runOnce() {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	snap, err := s.refresher.Refresh(ctx)
	if err != nil {
		s.logger.Error("Scheduled refresh failed: %v", err)
		return
	}
	s.logger.Info("Scheduled refresh done: generation=%d, bookings=%d", snap.Generation, len(snap.Bookings))
}

// cronLogger адаптер printf-логгера к cron.Logger
type cronLogger struct {
	log Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Info("cron: %s%s", msg, formatKV(keysAndValues))
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error("cron: %s: %v%s", msg, err, formatKV(keysAndValues))
}

func formatKV(kv []interface{}) string {
	if len(kv) == 0 {
		return ""
	}

	var b strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	return b.String()
}
