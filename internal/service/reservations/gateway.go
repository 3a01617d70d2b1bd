package reservations

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	"github.com/m04kA/SMC-DeliveryBooking/pkg/metrics"
	"github.com/m04kA/SMC-DeliveryBooking/pkg/retry"
)

const (
	opReadAll = "read_all"
	opAppend  = "append"

	defaultLockTimeout = 10 * time.Second
)

// Options параметры записи бронирований
type Options struct {
	// Retry политика повторов записи и проверки
	Retry retry.Policy
	// SettleDelay пауза между записью и проверочным чтением
	SettleDelay time.Duration
	// LockTimeout максимальное ожидание блокировки (если Locker задан)
	LockTimeout time.Duration
}

// Gateway единственная точка доступа к листу бронирований.
// Чтения идут через кэш с TTL, запись подтверждается повторным чтением.
type Gateway struct {
	repo        ReservationRepository
	cache       TableCache
	locker      Locker
	retry       retry.Policy
	settle      time.Duration
	lockTimeout time.Duration
	metrics     Metrics
	logger      Logger
}

// NewGateway создает шлюз хранилища бронирований.
// locker и metricsCollector могут быть nil.
func NewGateway(
	repo ReservationRepository,
	cache TableCache,
	locker Locker,
	opts Options,
	metricsCollector Metrics,
	logger Logger,
) *Gateway {
	if cache == nil {
		cache = noCache{}
	}
	if metricsCollector == nil {
		metricsCollector = noMetrics{}
	}
	if opts.Retry.MaxAttempts == 0 {
		opts.Retry = retry.DefaultPolicy()
	}
	if opts.LockTimeout <= 0 {
		opts.LockTimeout = defaultLockTimeout
	}

	return &Gateway{
		repo:        repo,
		cache:       cache,
		locker:      locker,
		retry:       opts.Retry,
		settle:      opts.SettleDelay,
		lockTimeout: opts.LockTimeout,
		metrics:     metricsCollector,
		logger:      logger,
	}
}

// Reservations возвращает все строки бронирований (из кэша, если он свежий)
func (g *Gateway) Reservations(ctx context.Context) ([]domain.StoredReservation, error) {
	return g.load(ctx, false)
}

// Occupied возвращает занятые слоты на дату
func (g *Gateway) Occupied(ctx context.Context, date time.Time) (domain.SlotSet, error) {
	rows, err := g.load(ctx, false)
	if err != nil {
		return nil, err
	}
	return g.occupiedOn(rows, date), nil
}

// Exists проверяет по свежему чтению, что бронирование записано
func (g *Gateway) Exists(ctx context.Context, r *domain.Reservation) (bool, error) {
	return g.exists(ctx, r)
}

// ListBySupplier возвращает бронирования поставщика в порядке записи.
// Строки, которые не удалось разобрать, пропускаются.
func (g *Gateway) ListBySupplier(ctx context.Context, supplier string) ([]*domain.Reservation, error) {
	rows, err := g.load(ctx, false)
	if err != nil {
		return nil, err
	}

	supplier = strings.TrimSpace(supplier)
	result := make([]*domain.Reservation, 0)
	skipped := 0

	for _, row := range rows {
		if strings.TrimSpace(row.Supplier) != supplier {
			continue
		}
		res, ok := row.ToReservation()
		if !ok {
			skipped++
			continue
		}
		result = append(result, res)
	}

	if skipped > 0 {
		g.logger.Warn("ReservationGateway: skipped %d malformed rows of supplier=%s", skipped, supplier)
	}

	return result, nil
}

// CommitReservation записывает бронирование.
//
// Порядок: свежее чтение и проверка, что ни один из слотов не занят (иначе ErrSlotConflict);
// запись строки; пауза; свежее чтение и поиск записанной строки. Если строка не найдена,
// запись повторяется по политике повторов. На повторных попытках сначала проверяется,
// не стала ли видна предыдущая запись, чтобы не создать дубль.
// Исчерпав попытки, возвращает ErrWriteUnverified, если хранилище принимало запись,
// и ErrStoreUnreachable, если не принимало ни разу.
//
// После начала записи отмена ctx не прерывает последовательность.
func (g *Gateway) CommitReservation(ctx context.Context, r *domain.Reservation) error {
	if err := validateReservation(r); err != nil {
		return err
	}

	dateKey := r.Date.Format(domain.DateFormat)

	if g.locker != nil {
		lockCtx, cancel := context.WithTimeout(ctx, g.lockTimeout)
		release, err := g.locker.Acquire(lockCtx, dateKey)
		cancel()
		if err != nil {
			g.logger.Error("ReservationGateway: failed to acquire lock for date=%s: %v", dateKey, err)
			g.metrics.IncReservation(metrics.OutcomeUnreachable)
			return fmt.Errorf("%w: acquire lock: %v", ErrStoreUnreachable, err)
		}
		defer release()
	}

	// 1. Проверка занятости по свежим данным
	rows, err := g.load(ctx, true)
	if err != nil {
		g.logger.Error("ReservationGateway: pre-check read failed for date=%s: %v", dateKey, err)
		g.metrics.IncReservation(metrics.OutcomeUnreachable)
		return err
	}

	occupied := g.occupiedOn(rows, r.Date)
	if occupied.HasAny(r.Slots) {
		g.logger.Warn("ReservationGateway: slot conflict supplier=%s date=%s slots=%s",
			r.Supplier, dateKey, r.SlotsCell())
		g.metrics.IncReservation(metrics.OutcomeConflict)
		return fmt.Errorf("%w: %s on %s", ErrSlotConflict, r.SlotsCell(), dateKey)
	}

	// 2. Запись с проверкой
	writeCtx := context.WithoutCancel(ctx)
	appended := false

	err = g.retry.Do(writeCtx, func(ctx context.Context, attempt int) error {
		if appended {
			found, err := g.exists(ctx, r)
			if err == nil && found {
				g.logger.Info("ReservationGateway: previous write became visible on attempt %d", attempt)
				return nil
			}
		}

		if err := g.append(ctx, r); err != nil {
			g.logger.Warn("ReservationGateway: attempt %d/%d append failed: %v", attempt, g.retry.MaxAttempts, err)
			return fmt.Errorf("%w: %v", ErrStoreUnreachable, err)
		}
		appended = true

		if err := g.retry.Pause(ctx, g.settle); err != nil {
			return err
		}

		found, err := g.exists(ctx, r)
		if err != nil {
			g.logger.Warn("ReservationGateway: attempt %d/%d verification read failed: %v", attempt, g.retry.MaxAttempts, err)
			return fmt.Errorf("%w: %v", ErrWriteUnverified, err)
		}
		if !found {
			g.logger.Warn("ReservationGateway: attempt %d/%d written row not found", attempt, g.retry.MaxAttempts)
			return fmt.Errorf("%w: row not found after write", ErrWriteUnverified)
		}
		return nil
	})

	g.invalidate(writeCtx)

	if err != nil {
		if !appended {
			g.logger.Error("ReservationGateway: store rejected every write supplier=%s date=%s: %v", r.Supplier, dateKey, err)
			g.metrics.IncReservation(metrics.OutcomeUnreachable)
			return fmt.Errorf("%w: %d attempts: %v", ErrStoreUnreachable, g.retry.MaxAttempts, err)
		}
		g.logger.Error("ReservationGateway: write unverified supplier=%s date=%s: %v", r.Supplier, dateKey, err)
		g.metrics.IncReservation(metrics.OutcomeUnverified)
		return fmt.Errorf("%w: %d attempts: %v", ErrWriteUnverified, g.retry.MaxAttempts, err)
	}

	g.logger.Info("ReservationGateway: committed supplier=%s date=%s slots=%s",
		r.Supplier, dateKey, r.SlotsCell())
	g.metrics.IncReservation(metrics.OutcomeCommitted)
	return nil
}

// load читает таблицу; fresh сбрасывает кэш перед чтением
func (g *Gateway) load(ctx context.Context, fresh bool) ([]domain.StoredReservation, error) {
	if fresh {
		g.invalidate(ctx)
	} else {
		rows, ok, err := g.cache.Get(ctx)
		if err != nil {
			g.logger.Warn("ReservationGateway: cache read failed: %v", err)
		}
		if ok {
			return rows, nil
		}
	}

	rows, err := g.readAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnreachable, err)
	}

	if err := g.cache.Set(ctx, rows); err != nil {
		g.logger.Warn("ReservationGateway: cache write failed: %v", err)
	}
	return rows, nil
}

func (g *Gateway) readAll(ctx context.Context) (rows []domain.StoredReservation, err error) {
	defer g.observe(opReadAll)(&err)
	return g.repo.GetAll(ctx)
}

func (g *Gateway) append(ctx context.Context, r *domain.Reservation) (err error) {
	defer g.observe(opAppend)(&err)
	return g.repo.Append(ctx, r)
}

func (g *Gateway) exists(ctx context.Context, r *domain.Reservation) (bool, error) {
	rows, err := g.load(ctx, true)
	if err != nil {
		return false, err
	}
	return containsReservation(rows, r), nil
}

func (g *Gateway) invalidate(ctx context.Context) {
	if err := g.cache.Invalidate(ctx); err != nil {
		g.logger.Warn("ReservationGateway: cache invalidation failed: %v", err)
	}
}

func (g *Gateway) observe(operation string) func(*error) {
	start := time.Now()
	return func(errp *error) {
		g.metrics.ObserveStoreOperation(operation, time.Since(start), *errp)
	}
}

// occupiedOn собирает занятые слоты даты, пропуская испорченные строки
func (g *Gateway) occupiedOn(rows []domain.StoredReservation, date time.Time) domain.SlotSet {
	occupied := make(domain.SlotSet)
	dateKey := date.Format(domain.DateFormat)
	badDates, badTokens := 0, 0

	for _, row := range rows {
		key, ok := row.DateKey()
		if !ok {
			badDates++
			continue
		}
		if key != dateKey {
			continue
		}

		slots, invalid := domain.ParseSlotTokens(row.Slots)
		badTokens += invalid
		for _, slot := range slots {
			occupied.Add(slot)
		}
	}

	if badDates > 0 || badTokens > 0 {
		g.logger.Warn("ReservationGateway: skipped malformed data: %d rows with bad date, %d bad slot tokens on %s",
			badDates, badTokens, dateKey)
	}

	return occupied
}

func containsReservation(rows []domain.StoredReservation, r *domain.Reservation) bool {
	for _, row := range rows {
		if row.Matches(r) {
			return true
		}
	}
	return false
}

func validateReservation(r *domain.Reservation) error {
	if r == nil {
		return fmt.Errorf("%w: nil reservation", ErrInvalidReservation)
	}
	if r.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidReservation)
	}
	if len(r.Slots) == 0 {
		return fmt.Errorf("%w: at least one slot is required", ErrInvalidReservation)
	}
	if strings.TrimSpace(r.Supplier) == "" {
		return fmt.Errorf("%w: supplier is required", ErrInvalidReservation)
	}
	return nil
}

type noCache struct{}

func (noCache) Get(context.Context) ([]domain.StoredReservation, bool, error) { return nil, false, nil }
func (noCache) Set(context.Context, []domain.StoredReservation) error       { return nil }
func (noCache) Invalidate(context.Context) error                            { return nil }

type noMetrics struct{}

func (noMetrics) ObserveStoreOperation(string, time.Duration, error) {}
func (noMetrics) IncReservation(string)                              {}
