package create_booking

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-DeliveryBooking/internal/usecase/create_booking"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid start time")
)

// CreateReservationRequest HTTP request model.
// Пустые date и packageCount берутся из последнего запроса доступности в сессии.
type CreateReservationRequest struct {
	Date           string   `json:"date,omitempty"` // "2025-01-15"
	StartTime      string   `json:"startTime"`      // "09:00"
	PackageCount   int      `json:"packageCount,omitempty"`
	PurchaseOrders []string `json:"purchaseOrders"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	Date             string   `json:"date"`
	Slots            []string `json:"slots"`
	SlotRange        string   `json:"slotRange"`
	Supplier         string   `json:"supplier"`
	PackageCount     int      `json:"packageCount"`
	PurchaseOrders   []string `json:"purchaseOrders"`
	NotificationSent bool     `json:"notificationSent"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(session *domain.Session) (*createBooking.Request, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, errInvalidDate
		}
		date = parsed
	}

	start, err := domain.ParseSlot(r.StartTime)
	if err != nil {
		return nil, errInvalidTime
	}

	return &createBooking.Request{
		Session:        session,
		Date:           date,
		StartTime:      start,
		PackageCount:   r.PackageCount,
		PurchaseOrders: r.PurchaseOrders,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *ReservationResponse {
	slots := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = s.String()
	}

	return &ReservationResponse{
		Date:             resp.Date.Format(domain.DateFormat),
		Slots:            slots,
		SlotRange:        resp.SlotRange,
		Supplier:         resp.Supplier,
		PackageCount:     resp.PackageCount,
		PurchaseOrders:   resp.PurchaseOrders,
		NotificationSent: resp.NotificationSent,
	}
}
