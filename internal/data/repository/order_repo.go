package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"food-ordering/internal/data/entity"
	"food-ordering/pkg/database"

	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log,
	}
}

// Create inserts a confirmed order, line items serialized as JSONB
func (or *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}

	query := `
		INSERT INTO orders (id, user_id, items, total_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = or.db.Exec(ctx, query,
		order.ID,
		order.UserID,
		items,
		order.TotalAmount,
		order.Status,
		order.CreatedAt,
	)

	if err != nil {
		or.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
			zap.String("user_id", order.UserID.String()),
		)
		return fmt.Errorf("create order %s: %w", order.ID.String(), err)
	}

	return nil
}
