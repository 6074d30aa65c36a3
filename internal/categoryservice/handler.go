package categoryservice

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/sushihentaime/pressroom/internal/common"
)

func NewCategoryService(db *sql.DB) *CategoryService {
	return &CategoryService{m: newCategoryModel(db)}
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// ListCategories returns every category annotated with its post count.
func (s *CategoryService) ListCategories(ctx context.Context) ([]CategoryWithCount, error) {
	return s.m.list(ctx)
}

// GetCategoryByID returns a single category without its post count.
func (s *CategoryService) GetCategoryByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	return s.m.getById(ctx, id)
}

// CreateCategory validates the payload and inserts a new category.
func (s *CategoryService) CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*Category, error) {
	v := common.NewValidator()
	validateName(v, req.Name)
	validateSlug(v, req.Slug)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	category := &Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}

	if err := s.m.insert(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// UpdateCategory validates the payload and replaces the identified
// category's fields in full.
func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req *CreateCategoryRequest) (*Category, error) {
	v := common.NewValidator()
	validateName(v, req.Name)
	validateSlug(v, req.Slug)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	category := &Category{
		ID:          id,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}

	if err := s.m.update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory removes a category. The delete is rejected with
// ErrCategoryInUse while any post still references the category.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.m.delete(ctx, id)
}
