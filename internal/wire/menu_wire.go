package wire

import (
	"food-ordering/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMenu(r chi.Router, menuHandler *adaptor.MenuHandler) {
	// Public read-only catalog
	r.Get("/menu", menuHandler.List)
}
