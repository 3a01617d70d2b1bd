package login

import (
	"time"

	loginUC "github.com/m04kA/SMC-DeliveryBooking/internal/usecase/login"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token     string `json:"token"`
	Supplier  string `json:"supplier"`
	Email     string `json:"email"`
	ExpiresAt string `json:"expiresAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *LoginRequest) ToUseCaseRequest() *loginUC.Request {
	return &loginUC.Request{
		Username: r.Username,
		Password: r.Password,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *loginUC.Response) *LoginResponse {
	return &LoginResponse{
		Token:     resp.Token,
		Supplier:  resp.Supplier,
		Email:     resp.Email,
		ExpiresAt: resp.ExpiresAt.Format(time.RFC3339),
	}
}
