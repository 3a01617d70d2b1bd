package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Session      *domain.Session // сессия поставщика, черновик обновляется выбранными датой и количеством
	Date         time.Time       // дата доставки (без времени)
	PackageCount int             // количество мест в доставке
}

// Response модель ответа со списком слотов
type Response struct {
	Date          time.Time
	PackageCount  int
	SlotsRequired int  // 1 или 2 смежных слота
	Closed        bool // прием в этот день не работает
	Slots         []Slot
}

// Slot модель начала доставки
type Slot struct {
	Start     domain.Slot
	End       domain.Slot
	Available bool
}
