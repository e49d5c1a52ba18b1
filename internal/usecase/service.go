package usecase

import (
	"food-ordering/internal/data/repository"
	"food-ordering/pkg/mailer"
	"food-ordering/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Menu    MenuService
	Payment PaymentService
}

func NewService(repo *repository.Repository, mail mailer.Sender, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, mail, config, log),
		Menu:    NewMenuService(repo.Menu, log),
		Payment: NewPaymentService(repo.Order, log),
	}
}
