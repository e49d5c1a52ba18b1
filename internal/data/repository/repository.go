package repository

import (
	"food-ordering/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User  UserRepository
	OTP   OTPRepository
	Menu  MenuRepository
	Order OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:  NewUserRepository(db, log),
		OTP:   NewOTPRepository(db, log),
		Menu:  NewMenuRepository(db, log),
		Order: NewOrderRepository(db, log),
	}
}
