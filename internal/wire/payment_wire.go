package wire

import (
	"food-ordering/internal/adaptor"
	"food-ordering/pkg/middleware"
	"food-ordering/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(middleware.AuthJWT(config.JWT.Secret, log)).Post("/payment/process", paymentHandler.Process)
}
