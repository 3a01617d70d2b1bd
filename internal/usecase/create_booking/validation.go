package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// applyDraft дополняет запрос значениями из черновика сессии
func applyDraft(req *Request) {
	if req.Session == nil {
		return
	}
	draft := req.Session.Draft
	if req.Date.IsZero() && draft.Date != nil {
		req.Date = *draft.Date
	}
	if req.PackageCount == 0 {
		req.PackageCount = draft.PackageCount
	}
	if len(req.PurchaseOrders) == 0 {
		req.PurchaseOrders = append([]string(nil), draft.PurchaseOrders...)
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Session == nil || req.Session.Supplier == "" {
		return fmt.Errorf("%w: session is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.PackageCount < 1 {
		return fmt.Errorf("%w: package count must be positive", ErrInvalidInput)
	}

	orders, err := normalizePurchaseOrders(req.PurchaseOrders)
	if err != nil {
		return err
	}
	req.PurchaseOrders = orders

	return nil
}

// normalizePurchaseOrders обрезает пробелы и проверяет номера заказов.
// Запятая внутри номера запрещена: в таблице номера разделяются запятыми.
func normalizePurchaseOrders(raw []string) ([]string, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: at least one purchase order is required", ErrInvalidInput)
	}

	orders := make([]string, 0, len(raw))
	for _, po := range raw {
		po = strings.TrimSpace(po)
		if po == "" {
			return nil, fmt.Errorf("%w: purchase order must not be empty", ErrInvalidInput)
		}
		if strings.Contains(po, ",") {
			return nil, fmt.Errorf("%w: purchase order %q must not contain commas", ErrInvalidInput, po)
		}
		orders = append(orders, po)
	}

	return orders, nil
}

// validateBookingTime проверяет, что слот сегодняшнего дня еще не начался
func validateBookingTime(date time.Time, start domain.Slot, now time.Time) error {
	if !isSameDay(date, now) {
		return nil
	}
	if start.MinutesOfDay() <= now.Hour()*60+now.Minute() {
		return fmt.Errorf("%w: %s has already started", ErrTooLateToBook, start)
	}
	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
