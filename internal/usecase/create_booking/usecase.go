package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	"github.com/m04kA/SMC-DeliveryBooking/internal/service/reservations"
)

// UseCase use case для создания бронирования слота доставки
type UseCase struct {
	gateway      ReservationGateway
	notifier     Notifier
	sessions     SessionStore
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	gateway ReservationGateway,
	notifier Notifier,
	sessions SessionStore,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		gateway:      gateway,
		notifier:     notifier,
		sessions:     sessions,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Бронирование считается созданным, только когда запись подтверждена чтением таблицы.
// Письмо отправляется после записи; ошибка отправки не отменяет бронирование.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Дополняем запрос черновиком сессии и валидируем
	applyDraft(req)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	supplier := req.Session.Supplier
	uc.logger.Info("CreateBooking: supplier=%s, date=%s, time=%s, packages=%d",
		supplier, req.Date.Format(domain.DateFormat), req.StartTime, req.PackageCount)

	// 2. Получаем текущее время и проверяем дату
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Определяем занимаемые слоты по расписанию
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())
	slots, err := domain.ReservationSlots(date, req.StartTime, req.PackageCount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrClosedDay):
			uc.logger.Warn("CreateBooking: receiving is closed on %s", date.Format(domain.DateFormat))
			return nil, ErrClosedDay
		case errors.Is(err, domain.ErrSlotOutsideSchedule):
			uc.logger.Warn("CreateBooking: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	// 4. Слоты сегодняшнего дня, которые уже начались, не бронируются
	if err := validateBookingTime(date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	reservation := &domain.Reservation{
		Date:           date,
		Slots:          slots,
		Supplier:       supplier,
		PackageCount:   req.PackageCount,
		PurchaseOrders: req.PurchaseOrders,
	}

	// 5. Записываем бронирование
	if err := uc.gateway.CommitReservation(ctx, reservation); err != nil {
		return nil, uc.mapCommitError(supplier, err)
	}

	uc.logger.Info("CreateBooking: reservation committed for supplier=%s, date=%s, slots=%s",
		supplier, date.Format(domain.DateFormat), reservation.SlotsCell())

	// 6. Отправляем подтверждение (best effort)
	sent := false
	if uc.notifier != nil {
		sent = uc.notifier.SendConfirmation(ctx, req.Session.Email, req.Session.CC, reservation)
	}
	if !sent {
		uc.logger.Warn("CreateBooking: confirmation was not sent to supplier=%s", supplier)
	}

	// 7. Сессия завершается после успешного бронирования
	if uc.sessions != nil {
		uc.sessions.Delete(req.Session.Token)
	}

	return &Response{
		Date:             date,
		Slots:            slots,
		SlotRange:        reservation.Start().String() + " - " + reservation.End().String(),
		Supplier:         supplier,
		PackageCount:     reservation.PackageCount,
		PurchaseOrders:   reservation.PurchaseOrders,
		NotificationSent: sent,
	}, nil
}

// mapCommitError переводит ошибки шлюза в ошибки use case
func (uc *UseCase) mapCommitError(supplier string, err error) error {
	switch {
	case errors.Is(err, reservations.ErrSlotConflict):
		uc.logger.Warn("CreateBooking: slot already taken for supplier=%s: %v", supplier, err)
		return ErrSlotNotAvailable
	case errors.Is(err, reservations.ErrStoreUnreachable):
		uc.logger.Error("CreateBooking: store unreachable for supplier=%s: %v", supplier, err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	case errors.Is(err, reservations.ErrWriteUnverified):
		uc.logger.Error("CreateBooking: write not verified for supplier=%s: %v", supplier, err)
		return fmt.Errorf("%w: %v", ErrWriteUnverified, err)
	case errors.Is(err, reservations.ErrInvalidReservation):
		uc.logger.Warn("CreateBooking: reservation rejected for supplier=%s: %v", supplier, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		uc.logger.Error("CreateBooking: failed to commit reservation for supplier=%s: %v", supplier, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
