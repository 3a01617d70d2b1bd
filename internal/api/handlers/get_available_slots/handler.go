package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeliveryBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryBooking/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/SMC-DeliveryBooking/internal/usecase/get_available_slots"
)

const (
	msgUnauthorized     = "se requiere iniciar sesión"
	msgMissingDate      = "la fecha es obligatoria"
	msgInvalidDate      = "formato de fecha no válido, se espera YYYY-MM-DD"
	msgInvalidPackages  = "el número de bultos debe ser un entero positivo"
	msgDateInPast       = "la fecha seleccionada ya pasó"
	msgStoreUnavailable = "no se pudo consultar la disponibilidad, intente más tarde"
)

var (
	errInvalidDate     = errors.New("invalid date")
	errInvalidPackages = errors.New("invalid package count")
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: date (required, YYYY-MM-DD), packages (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(session, dateStr, r.URL.Query().Get("packages"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid query: %v", err)
		if errors.Is(err, errInvalidPackages) {
			handlers.RespondBadRequest(w, msgInvalidPackages)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: supplier=%s, error=%v", session.Supplier, err)
			handlers.RespondBadRequest(w, msgInvalidPackages)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /available-slots - Date in the past: supplier=%s, date=%s", session.Supplier, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrStoreUnavailable):
			h.logger.Error("GET /available-slots - Store unavailable: supplier=%s, error=%v", session.Supplier, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: supplier=%s, date=%s, error=%v",
				session.Supplier, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - Slots retrieved successfully: supplier=%s, date=%s, slots_count=%d",
		session.Supplier, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
