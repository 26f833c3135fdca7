package services

import (
	"context"
	"errors"
	"fmt"

	"go-restaurant-pos/models"
	"go-restaurant-pos/repository"
)

type TableService struct {
	tables TableStore
}

func NewTableService(tables TableStore) *TableService {
	return &TableService{tables: tables}
}

func (s *TableService) List(ctx context.Context) ([]models.Table, error) {
	return s.tables.List(ctx)
}

func (s *TableService) Get(ctx context.Context, tableID string) (models.Table, error) {
	table, err := s.tables.FindByID(ctx, tableID)
	return table, notFound(err)
}

func (s *TableService) Create(ctx context.Context, number, capacity int) (models.Table, error) {
	if number <= 0 || capacity < 0 {
		return models.Table{}, fmt.Errorf("%w: table number must be positive", ErrInvalidInput)
	}
	if capacity == 0 {
		capacity = models.DefaultTableCapacity
	}
	table := models.Table{
		Number:   number,
		Capacity: capacity,
		Status:   models.TableAvailable,
	}
	if err := s.tables.Insert(ctx, &table); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.Table{}, ErrDuplicateTable
		}
		return models.Table{}, err
	}
	return table, nil
}
