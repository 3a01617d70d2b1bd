package get_supplier_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-DeliveryBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryBooking/internal/api/middleware"
)

const (
	msgUnauthorized     = "se requiere iniciar sesión"
	msgStoreUnavailable = "no se pudo consultar el historial, intente más tarde"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	reservations, err := h.service.ListBySupplier(r.Context(), session.Supplier)
	if err != nil {
		h.logger.Error("GET /reservations - Failed to get reservations: supplier=%s, error=%v", session.Supplier, err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved successfully: supplier=%s, count=%d",
		session.Supplier, len(reservations))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(reservations))
}
