package create_booking

import (
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// Request модель запроса на создание бронирования.
// Нулевые Date и PackageCount берутся из черновика сессии.
type Request struct {
	Session        *domain.Session
	Date           time.Time   // дата доставки (без времени)
	StartTime      domain.Slot // первый слот доставки
	PackageCount   int         // количество мест
	PurchaseOrders []string    // номера заказов на закупку
}

// Response модель ответа с записанным бронированием
type Response struct {
	Date             time.Time
	Slots            []domain.Slot
	SlotRange        string // например, "09:00 - 10:00"
	Supplier         string
	PackageCount     int
	PurchaseOrders   []string
	NotificationSent bool
}
