package get_available_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-DeliveryBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date          string          `json:"date"`
	PackageCount  int             `json:"packageCount"`
	SlotsRequired int             `json:"slotsRequired"`
	Closed        bool            `json:"closed"`
	Slots         []AvailableSlot `json:"slots"`
}

// AvailableSlot модель начала доставки
type AvailableSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.Start.String(),
			EndTime:   slot.End.String(),
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		PackageCount:  resp.PackageCount,
		SlotsRequired: resp.SlotsRequired,
		Closed:        resp.Closed,
		Slots:         slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(session *domain.Session, dateStr, packagesStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, errInvalidDate
	}

	packages, err := strconv.Atoi(packagesStr)
	if err != nil {
		return nil, errInvalidPackages
	}

	return &getAvailableSlots.Request{
		Session:      session,
		Date:         date,
		PackageCount: packages,
	}, nil
}
