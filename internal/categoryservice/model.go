package categoryservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/sushihentaime/pressroom/internal/common"
)

var (
	ErrDuplicateName = errors.New("a category with this name already exists")
	ErrDuplicateSlug = errors.New("a category with this slug already exists")
	ErrCategoryInUse = errors.New("category still has posts assigned to it")
)

func newCategoryModel(db *sql.DB) *CategoryModel {
	return &CategoryModel{db: db}
}

// list returns every category with its post count. Category cardinality is
// assumed to be small, so there is no pagination here.
func (m *CategoryModel) list(ctx context.Context) ([]CategoryWithCount, error) {
	query := `
		SELECT c.id, c.name, c.slug, c.description, c.created_at, c.updated_at, COUNT(p.id)
		FROM categories c
		LEFT JOIN posts p ON p.category_id = c.id
		GROUP BY c.id
		ORDER BY c.name`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []CategoryWithCount{}
	for rows.Next() {
		var c CategoryWithCount
		err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.UpdatedAt, &c.PostCount)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (m *CategoryModel) getById(ctx context.Context, id uuid.UUID) (*Category, error) {
	query := `
		SELECT id, name, slug, description, created_at, updated_at
		FROM categories
		WHERE id = $1`

	var c Category
	err := m.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &c, nil
}

func (m *CategoryModel) insert(ctx context.Context, c *Category) error {
	query := `
		INSERT INTO categories (name, slug, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := m.db.QueryRowContext(ctx, query, c.Name, c.Slug, c.Description).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		switch {
		case common.UniqueViolation(err, "categories_name_key"):
			return ErrDuplicateName
		case common.UniqueViolation(err, "categories_slug_key"):
			return ErrDuplicateSlug
		default:
			return err
		}
	}

	return nil
}

func (m *CategoryModel) update(ctx context.Context, c *Category) error {
	query := `
		UPDATE categories
		SET name = $1, slug = $2, description = $3, updated_at = now()
		WHERE id = $4
		RETURNING created_at, updated_at`

	err := m.db.QueryRowContext(ctx, query, c.Name, c.Slug, c.Description, c.ID).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return common.ErrRecordNotFound
		case common.UniqueViolation(err, "categories_name_key"):
			return ErrDuplicateName
		case common.UniqueViolation(err, "categories_slug_key"):
			return ErrDuplicateSlug
		default:
			return err
		}
	}

	return nil
}

// delete removes a category. The posts foreign key is declared ON DELETE
// RESTRICT, so the database rejects the delete while posts still point at
// the category.
func (m *CategoryModel) delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM categories
		WHERE id = $1`

	res, err := m.db.ExecContext(ctx, query, id)
	if err != nil {
		switch {
		case common.ForeignKeyViolation(err, "posts_category_id_fkey"):
			return ErrCategoryInUse
		default:
			return err
		}
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return common.ErrRecordNotFound
	}

	return nil
}
