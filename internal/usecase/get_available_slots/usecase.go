package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	"github.com/m04kA/SMC-DeliveryBooking/internal/service/availability"
)

// UseCase use case для получения доступных слотов доставки
type UseCase struct {
	gateway      ReservationGateway
	sessions     SessionStore
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	gateway ReservationGateway,
	sessions SessionStore,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		gateway:      gateway,
		sessions:     sessions,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: supplier=%s, date=%s, packages=%d",
		req.Session.Supplier, req.Date.Format(domain.DateFormat), req.PackageCount)

	// 2. Получаем текущее время и проверяем дату
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Запоминаем выбор в черновике сессии
	uc.saveDraft(req)

	response := &Response{
		Date:          req.Date,
		PackageCount:  req.PackageCount,
		SlotsRequired: domain.SlotsRequired(req.PackageCount),
		Slots:         []Slot{},
	}

	// 4. В воскресенье прием закрыт, таблицу не читаем
	if !domain.WorkingHoursFor(req.Date.Weekday()).IsOpen {
		uc.logger.Info("GetAvailableSlots: receiving is closed on %s", req.Date.Format(domain.DateFormat))
		response.Closed = true
		return response, nil
	}

	// 5. Получаем занятые слоты на дату
	occupied, err := uc.gateway.Occupied(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to read reservations: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	// 6. Вычисляем доступность и закрываем уже начавшиеся слоты сегодняшнего дня
	today := isSameDay(req.Date, now)
	available := 0
	for _, s := range availability.Compute(req.Date, occupied, req.PackageCount) {
		slot := Slot{Start: s.Start, End: s.End, Available: s.Available}
		if today && hasStarted(s.Start, now) {
			slot.Available = false
		}
		if slot.Available {
			available++
		}
		response.Slots = append(response.Slots, slot)
	}

	uc.logger.Info("GetAvailableSlots: %d of %d starts available for supplier=%s, date=%s",
		available, len(response.Slots), req.Session.Supplier, req.Date.Format(domain.DateFormat))

	return response, nil
}

func (uc *UseCase) saveDraft(req *Request) {
	if uc.sessions == nil {
		return
	}

	session := req.Session.Clone()
	date := req.Date
	session.Draft.Date = &date
	session.Draft.PackageCount = req.PackageCount
	session.Draft.Slot = nil

	if err := uc.sessions.Save(session); err != nil {
		uc.logger.Warn("GetAvailableSlots: failed to save draft for supplier=%s: %v", session.Supplier, err)
	}
}

// hasStarted проверяет, что слот уже начался к моменту now
func hasStarted(slot domain.Slot, now time.Time) bool {
	return slot.MinutesOfDay() <= now.Hour()*60+now.Minute()
}
