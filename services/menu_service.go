package services

import (
	"context"
	"fmt"
	"strings"

	"go-restaurant-pos/models"
)

type MenuService struct {
	menu MenuStore
}

func NewMenuService(menu MenuStore) *MenuService {
	return &MenuService{menu: menu}
}

func (s *MenuService) List(ctx context.Context) ([]models.MenuItem, error) {
	return s.menu.ListAvailable(ctx)
}

func (s *MenuService) Categories(ctx context.Context) ([]string, error) {
	return s.menu.Categories(ctx)
}

func (s *MenuService) Create(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" || item.Price <= 0 {
		return models.MenuItem{}, fmt.Errorf("%w: menu item needs a name and a positive price", ErrInvalidInput)
	}
	if strings.TrimSpace(item.Category) == "" {
		item.Category = models.DefaultCategory
	}
	item.Available = true
	if err := s.menu.Insert(ctx, &item); err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}
