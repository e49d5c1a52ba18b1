package entity

import (
	"github.com/google/uuid"
)

type MenuItem struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Price       float64   `db:"price"`
	Image       string    `db:"image"`
	Category    string    `db:"category"`
	IsVeg       bool      `db:"is_veg"`
}
