package usecase

import (
	"context"
	"fmt"
	"time"

	"food-ordering/internal/data/entity"
	"food-ordering/internal/data/repository"
	"food-ordering/internal/dto/request"
	"food-ordering/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	Process(ctx context.Context, userID uuid.UUID, req *request.PaymentRequest) (*response.PaymentResponse, error)
}

type paymentService struct {
	repo repository.OrderRepository
	log  *zap.Logger
}

func NewPaymentService(repo repository.OrderRepository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log,
	}
}

// Process simulates a payment and records the order. There is no real
// gateway behind this: a well-formed request always succeeds. Every call
// produces a fresh order id.
func (s *paymentService) Process(ctx context.Context, userID uuid.UUID, req *request.PaymentRequest) (*response.PaymentResponse, error) {
	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, entity.OrderItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	order := &entity.Order{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:      userID,
		Items:       items,
		TotalAmount: req.Amount,
		Status:      entity.OrderStatusConfirmed,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.log.Error("Failed to record order",
			zap.Error(err),
			zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("record order: %w", err)
	}

	s.log.Info("Order confirmed",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Float64("amount", order.TotalAmount))

	return &response.PaymentResponse{
		Success: true,
		OrderID: order.ID.String(),
		Message: "Payment successful",
	}, nil
}
