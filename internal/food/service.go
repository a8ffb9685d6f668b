package food

import (
	"context"
	"fmt"

	"github.com/fstore/backoffice/internal/apiclient"
)

// Service exposes the food and category endpoints of the storefront API.
type Service struct {
	api *apiclient.Client
}

func NewService(api *apiclient.Client) *Service {
	return &Service{api: api}
}

func (s *Service) GetAllFoods(ctx context.Context) ([]FoodRecord, error) {
	var records []FoodRecord
	if err := s.api.Get(ctx, "/api/foods", &records); err != nil {
		return nil, fmt.Errorf("food: failed to fetch foods: %w", err)
	}
	return records, nil
}

func (s *Service) AddFood(ctx context.Context, f Food) (FoodRecord, error) {
	var created FoodRecord
	if err := s.api.Post(ctx, "/api/foods", ToSend(f), &created); err != nil {
		return FoodRecord{}, fmt.Errorf("food: failed to create food: %w", err)
	}
	return created, nil
}

func (s *Service) UpdateFood(ctx context.Context, f Food) (FoodRecord, error) {
	var updated FoodRecord
	if err := s.api.Put(ctx, fmt.Sprintf("/api/foods/%d", f.ID), ToSend(f), &updated); err != nil {
		return FoodRecord{}, fmt.Errorf("food: failed to update food %d: %w", f.ID, err)
	}
	return updated, nil
}

func (s *Service) DeleteFood(ctx context.Context, id int) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/api/foods/%d", id)); err != nil {
		return fmt.Errorf("food: failed to delete food %d: %w", id, err)
	}
	return nil
}

func (s *Service) GetAllCategories(ctx context.Context) ([]CategoryRecord, error) {
	var records []CategoryRecord
	if err := s.api.Get(ctx, "/api/categories", &records); err != nil {
		return nil, fmt.Errorf("food: failed to fetch categories: %w", err)
	}
	return records, nil
}

func (s *Service) AddCategory(ctx context.Context, c Category) (CategoryRecord, error) {
	var created CategoryRecord
	if err := s.api.Post(ctx, "/api/categories", CategoryRecord(c), &created); err != nil {
		return CategoryRecord{}, fmt.Errorf("food: failed to create category: %w", err)
	}
	return created, nil
}
