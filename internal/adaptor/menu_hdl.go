package adaptor

import (
	"net/http"

	"food-ordering/internal/data/repository"
	"food-ordering/internal/usecase"
	"food-ordering/pkg/utils"

	"go.uber.org/zap"
)

type MenuHandler struct {
	service usecase.MenuService
	log     *zap.Logger
}

func NewMenuHandler(service usecase.MenuService, log *zap.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /menu?isVeg=<bool>&search=<string>
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter repository.MenuFilter

	// isVeg is a literal boolean-string: when provided, anything other
	// than "true" filters for non-veg
	if v := r.URL.Query().Get("isVeg"); v != "" {
		isVeg := v == "true"
		filter.IsVeg = &isVeg
	}

	filter.Search = r.URL.Query().Get("search")

	items, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.log.Error("Failed to list menu", zap.Error(err))
		utils.ResponseInternalError(w, "Server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, items)
}
