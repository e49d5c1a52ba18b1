package usecase

import (
	"context"
	"fmt"

	"food-ordering/internal/data/repository"
	"food-ordering/internal/dto/response"

	"go.uber.org/zap"
)

type MenuService interface {
	List(ctx context.Context, filter repository.MenuFilter) ([]response.MenuItemResponse, error)
}

type menuService struct {
	repo repository.MenuRepository
	log  *zap.Logger
}

func NewMenuService(repo repository.MenuRepository, log *zap.Logger) MenuService {
	return &menuService{
		repo: repo,
		log:  log,
	}
}

// List returns the catalog, optionally narrowed by vegetarian flag and a
// case-insensitive substring search over name/description.
func (s *menuService) List(ctx context.Context, filter repository.MenuFilter) ([]response.MenuItemResponse, error) {
	items, err := s.repo.Find(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list menu items", zap.Error(err))
		return nil, fmt.Errorf("list menu items: %w", err)
	}

	// Empty catalog still serializes as [] rather than null
	result := make([]response.MenuItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, response.MenuItemToResponse(item))
	}

	return result, nil
}
