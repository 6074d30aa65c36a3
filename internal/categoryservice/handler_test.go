package categoryservice

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sushihentaime/pressroom/internal/common"
)

func setupTestEnvironment(t *testing.T) (*CategoryService, *sql.DB) {
	db := common.TestDB("file://../../migrations", t)
	return NewCategoryService(db), db
}

// createTestCategory inserts a category directly, bypassing the service.
func createTestCategory(t *testing.T, db *sql.DB, name, slug string) uuid.UUID {
	var id uuid.UUID
	err := db.QueryRow(`
		INSERT INTO categories (name, slug)
		VALUES ($1, $2)
		RETURNING id`, name, slug).Scan(&id)
	assert.NoError(t, err)

	return id
}

func createTestPost(t *testing.T, db *sql.DB, title, slug string, categoryID uuid.UUID) uuid.UUID {
	var id uuid.UUID
	err := db.QueryRow(`
		INSERT INTO posts (title, slug, content, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`, title, slug, "test content", categoryID).Scan(&id)
	assert.NoError(t, err)

	return id
}

func TestCreateCategory(t *testing.T) {
	s, db := setupTestEnvironment(t)
	ctx := context.Background()

	createTestCategory(t, db, "Existing", "existing")

	testCases := []struct {
		name        string
		req         *CreateCategoryRequest
		expectedErr error
	}{
		{
			name:        "valid category",
			req:         &CreateCategoryRequest{Name: "Tech", Slug: "tech", Description: "Technology posts"},
			expectedErr: nil,
		},
		{
			name:        "empty name",
			req:         &CreateCategoryRequest{Name: "", Slug: "no-name"},
			expectedErr: common.ValidationError{Errors: map[string]string{"name": "must be provided"}},
		},
		{
			name:        "empty slug",
			req:         &CreateCategoryRequest{Name: "No Slug", Slug: ""},
			expectedErr: common.ValidationError{Errors: map[string]string{"slug": "must be provided"}},
		},
		{
			name:        "malformed slug",
			req:         &CreateCategoryRequest{Name: "Bad Slug", Slug: "Bad Slug!"},
			expectedErr: common.ValidationError{Errors: map[string]string{"slug": "must be lowercase alphanumeric tokens separated by single hyphens"}},
		},
		{
			name:        "duplicate name",
			req:         &CreateCategoryRequest{Name: "Existing", Slug: "other-slug"},
			expectedErr: ErrDuplicateName,
		},
		{
			name:        "duplicate slug",
			req:         &CreateCategoryRequest{Name: "Other Name", Slug: "existing"},
			expectedErr: ErrDuplicateSlug,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			category, err := s.CreateCategory(ctx, tc.req)
			assert.Equal(t, tc.expectedErr, err)

			if err == nil {
				assert.NotEqual(t, uuid.Nil, category.ID)
				assert.Equal(t, tc.req.Name, category.Name)
				assert.Equal(t, tc.req.Slug, category.Slug)
				assert.False(t, category.CreatedAt.IsZero())
			}
		})
	}
}

func TestListCategories(t *testing.T) {
	s, db := setupTestEnvironment(t)
	ctx := context.Background()

	techID := createTestCategory(t, db, "Tech", "tech")
	createTestCategory(t, db, "Life", "life")
	createTestPost(t, db, "First", "first", techID)
	createTestPost(t, db, "Second", "second", techID)

	categories, err := s.ListCategories(ctx)
	assert.NoError(t, err)
	assert.Len(t, categories, 2)

	counts := make(map[string]int)
	for _, c := range categories {
		counts[c.Slug] = c.PostCount
	}
	assert.Equal(t, 2, counts["tech"])
	assert.Equal(t, 0, counts["life"])
}

func TestGetCategoryByID(t *testing.T) {
	s, db := setupTestEnvironment(t)
	ctx := context.Background()

	id := createTestCategory(t, db, "Tech", "tech")

	t.Run("existing category", func(t *testing.T) {
		category, err := s.GetCategoryByID(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, "Tech", category.Name)
		assert.Equal(t, "tech", category.Slug)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := s.GetCategoryByID(ctx, uuid.New())
		assert.ErrorIs(t, err, common.ErrRecordNotFound)
	})
}

func TestUpdateCategory(t *testing.T) {
	s, db := setupTestEnvironment(t)
	ctx := context.Background()

	id := createTestCategory(t, db, "Tech", "tech")
	createTestCategory(t, db, "Life", "life")

	t.Run("full replace", func(t *testing.T) {
		category, err := s.UpdateCategory(ctx, id, &CreateCategoryRequest{Name: "Technology", Slug: "technology", Description: "renamed"})
		assert.NoError(t, err)
		assert.Equal(t, "Technology", category.Name)
		assert.Equal(t, "technology", category.Slug)
		assert.Equal(t, "renamed", category.Description)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := s.UpdateCategory(ctx, uuid.New(), &CreateCategoryRequest{Name: "Ghost", Slug: "ghost"})
		assert.ErrorIs(t, err, common.ErrRecordNotFound)
	})

	t.Run("slug collision", func(t *testing.T) {
		_, err := s.UpdateCategory(ctx, id, &CreateCategoryRequest{Name: "Technology", Slug: "life"})
		assert.ErrorIs(t, err, ErrDuplicateSlug)

		// the collision must leave the category untouched
		category, err := s.GetCategoryByID(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, "technology", category.Slug)
	})

	t.Run("invalid payload", func(t *testing.T) {
		_, err := s.UpdateCategory(ctx, id, &CreateCategoryRequest{Name: "", Slug: ""})
		assert.Equal(t, common.ValidationError{Errors: map[string]string{
			"name": "must be provided",
			"slug": "must be provided",
		}}, err)
	})
}

func TestDeleteCategory(t *testing.T) {
	s, db := setupTestEnvironment(t)
	ctx := context.Background()

	techID := createTestCategory(t, db, "Tech", "tech")
	lifeID := createTestCategory(t, db, "Life", "life")
	createTestPost(t, db, "First", "first", techID)

	t.Run("category with posts is rejected", func(t *testing.T) {
		err := s.DeleteCategory(ctx, techID)
		assert.ErrorIs(t, err, ErrCategoryInUse)

		// the guarded delete must not remove the category
		_, err = s.GetCategoryByID(ctx, techID)
		assert.NoError(t, err)
	})

	t.Run("empty category is deleted", func(t *testing.T) {
		err := s.DeleteCategory(ctx, lifeID)
		assert.NoError(t, err)

		_, err = s.GetCategoryByID(ctx, lifeID)
		assert.ErrorIs(t, err, common.ErrRecordNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := s.DeleteCategory(ctx, uuid.New())
		assert.ErrorIs(t, err, common.ErrRecordNotFound)
	})
}
