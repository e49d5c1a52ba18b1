package wire

import (
	"food-ordering/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// All auth routes are public: the session token only exists after
	// a successful OTP verification
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Post("/auth/send-otp", authHandler.SendOTP)
	r.Post("/auth/verify-otp", authHandler.VerifyOTP)
}
