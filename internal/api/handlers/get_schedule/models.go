package get_schedule

import (
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	Date    string   `json:"date"`
	Weekday string   `json:"weekday"`
	IsOpen  bool     `json:"isOpen"`
	Open    *string  `json:"open,omitempty"`
	Close   *string  `json:"close,omitempty"`
	Slots   []string `json:"slots"`
}

// NewScheduleResponse собирает ответ по расписанию приема на дату
func NewScheduleResponse(date time.Time) *ScheduleResponse {
	hours := domain.WorkingHoursFor(date.Weekday())
	slots := domain.GenerateSlots(date.Weekday())

	resp := &ScheduleResponse{
		Date:    date.Format(domain.DateFormat),
		Weekday: date.Weekday().String(),
		IsOpen:  hours.IsOpen,
		Slots:   make([]string, len(slots)),
	}
	for i, s := range slots {
		resp.Slots[i] = s.String()
	}
	if hours.IsOpen {
		open, closing := hours.Open.String(), hours.Close.String()
		resp.Open = &open
		resp.Close = &closing
	}
	return resp
}
