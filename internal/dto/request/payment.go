package request

type OrderItemRequest struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"required,min=1"`
}

// Card details are optional: the gateway is a mock and the frontend
// validates the form. When present they must at least look like a card.
type PaymentRequest struct {
	Amount     float64            `json:"amount" validate:"required,gt=0"`
	Items      []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	CardNumber string             `json:"cardNumber" validate:"omitempty,len=16,numeric"`
	CVV        string             `json:"cvv" validate:"omitempty,len=3,numeric"`
}
