package adaptor

import (
	"food-ordering/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Menu    *MenuHandler
	Payment *PaymentHandler
	Cart    *CartHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Menu:    NewMenuHandler(service.Menu, log),
		Payment: NewPaymentHandler(service.Payment, log),
		Cart:    NewCartHandler(log),
	}
}
