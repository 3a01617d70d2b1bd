package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeliveryBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-DeliveryBooking/internal/usecase/create_booking"
)

const (
	msgUnauthorized       = "se requiere iniciar sesión"
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidDate        = "formato de fecha no válido, se espera YYYY-MM-DD"
	msgInvalidTime        = "formato de hora no válido, se espera HH:MM"
	msgInvalidInput       = "datos de la reserva incompletos: indique bultos y órdenes de compra sin comas"
	msgDateInPast         = "la fecha seleccionada ya pasó"
	msgClosedDay          = "no se reciben entregas en la fecha seleccionada"
	msgInvalidTimeSlot    = "el horario seleccionado no está disponible en el calendario de recepción"
	msgTooLateToBook      = "el horario seleccionado ya comenzó"
	msgSlotNotAvailable   = "el horario seleccionado ya fue reservado, elija otro"
	msgStoreUnavailable   = "no se pudo registrar la reserva, intente nuevamente"
	msgWriteUnverified    = "no se pudo confirmar la reserva; verifique su historial antes de reintentar"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(session)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: supplier=%s, time=%s", session.Supplier, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: supplier=%s, error=%v", session.Supplier, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Date in the past: supplier=%s", session.Supplier)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrClosedDay):
			h.logger.Warn("POST /reservations - Receiving closed: supplier=%s", session.Supplier)
			handlers.RespondBadRequest(w, msgClosedDay)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /reservations - Invalid time slot: supplier=%s, time=%s", session.Supplier, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /reservations - Too late to book: supplier=%s, time=%s", session.Supplier, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrStoreUnavailable):
			h.logger.Error("POST /reservations - Store unavailable: supplier=%s, error=%v", session.Supplier, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		case errors.Is(err, createBooking.ErrWriteUnverified):
			h.logger.Error("POST /reservations - Write unverified: supplier=%s, error=%v", session.Supplier, err)
			handlers.RespondError(w, http.StatusBadGateway, msgWriteUnverified)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: supplier=%s, error=%v", session.Supplier, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: supplier=%s, date=%s, slots=%s, notified=%t",
		result.Supplier, result.Date.Format(domain.DateFormat), result.SlotRange, result.NotificationSent)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
