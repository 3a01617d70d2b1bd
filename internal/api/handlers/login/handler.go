package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeliveryBooking/internal/api/handlers"
	loginUC "github.com/m04kA/SMC-DeliveryBooking/internal/usecase/login"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgMissingCredentials = "usuario y contraseña son obligatorios"
	msgInvalidCredentials = "usuario o contraseña incorrectos"
	msgStoreUnavailable   = "no se pudo verificar las credenciales, intente más tarde"
)

type Handler struct {
	useCase LoginUseCase
	logger  Logger
}

func NewHandler(useCase LoginUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, loginUC.ErrInvalidInput):
			h.logger.Warn("POST /auth/login - Missing credentials")
			handlers.RespondBadRequest(w, msgMissingCredentials)

		case errors.Is(err, loginUC.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: username=%s", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, loginUC.ErrStoreUnavailable):
			h.logger.Error("POST /auth/login - Credential store unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("POST /auth/login - Failed to login: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Supplier logged in: supplier=%s", result.Supplier)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
