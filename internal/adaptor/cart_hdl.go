package adaptor

import (
	"net/http"

	"food-ordering/pkg/utils"

	"go.uber.org/zap"
)

// CartHandler only exposes a status probe. The cart itself lives
// client-side; there is no server-side cart persistence.
type CartHandler struct {
	log *zap.Logger
}

func NewCartHandler(log *zap.Logger) *CartHandler {
	return &CartHandler{log: log}
}

// Status handles GET /cart/status (requires bearer token)
func (h *CartHandler) Status(w http.ResponseWriter, r *http.Request) {
	utils.ResponseMessage(w, "Cart API is working")
}
