package service

import (
	"context"

	"github.com/finance-tracker/backend/internal/db"
	"github.com/finance-tracker/backend/internal/model"
)

type categoryStore interface {
	CreateCategory(ctx context.Context, c *model.Category) (*model.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, c *model.Category) error
	DeleteCategory(ctx context.Context, id int64) (bool, error)
	ListSubCategories(ctx context.Context, categoryID int64) ([]model.SubCategory, error)
	ListPaymentMethods(ctx context.Context) ([]model.PaymentMethod, error)
}

type CategoryService struct {
	store categoryStore
}

func NewCategoryService(store categoryStore) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) Create(ctx context.Context, req model.CategoryRequest) (*model.Category, error) {
	if req.Name == "" {
		return nil, NewValidation("Category name is required.")
	}
	return s.store.CreateCategory(ctx, &model.Category{
		Name:        req.Name,
		Description: req.Description,
	})
}

func (s *CategoryService) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	category, err := s.store.GetCategoryByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, NewNotFound("Category", id)
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.store.ListCategories(ctx)
}

func (s *CategoryService) Update(ctx context.Context, id int64, req model.CategoryRequest) (*model.Category, error) {
	category, err := s.store.GetCategoryByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, NewNotFound("Category", id)
		}
		return nil, err
	}

	category.Name = req.Name
	category.Description = req.Description

	if err := s.store.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteCategory(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return NewNotFound("Category", id)
	}
	return nil
}

// SubCategories lists the sub-categories of one category; the category
// must exist.
func (s *CategoryService) SubCategories(ctx context.Context, categoryID int64) ([]model.SubCategory, error) {
	if _, err := s.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.store.ListSubCategories(ctx, categoryID)
}

func (s *CategoryService) PaymentMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	return s.store.ListPaymentMethods(ctx)
}
