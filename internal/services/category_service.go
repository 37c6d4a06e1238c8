package services

import (
	"context"

	"johuart/internal/models"
)

type CategoryService struct {
	CategoryRepo CategoryStore
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return s.CategoryRepo.GetAllCategories(ctx)
}

func (s *CategoryService) GetCategoryByName(ctx context.Context, subcategoryName string) (models.Category, error) {
	return s.CategoryRepo.GetCategoryByName(ctx, subcategoryName)
}
