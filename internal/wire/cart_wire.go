package wire

import (
	"food-ordering/internal/adaptor"
	"food-ordering/pkg/middleware"
	"food-ordering/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCart(
	r chi.Router,
	cartHandler *adaptor.CartHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(middleware.AuthJWT(config.JWT.Secret, log)).Get("/cart/status", cartHandler.Status)
}
