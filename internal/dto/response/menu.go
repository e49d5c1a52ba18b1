package response

import (
	"food-ordering/internal/data/entity"
)

type MenuItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	IsVeg       bool    `json:"isVeg"`
}

func MenuItemToResponse(item *entity.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Image:       item.Image,
		Category:    item.Category,
		IsVeg:       item.IsVeg,
	}
}
