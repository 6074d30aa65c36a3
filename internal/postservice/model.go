package postservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sushihentaime/pressroom/internal/categoryservice"
	"github.com/sushihentaime/pressroom/internal/common"
)

var (
	ErrDuplicateSlug    = errors.New("a post with this slug already exists")
	ErrCategoryNotFound = errors.New("referenced category does not exist")
)

func newPostModel(db *sql.DB) *PostModel {
	return &PostModel{db: db}
}

const postWithCategoryColumns = `
	p.id, p.title, p.slug, p.excerpt, p.content, p.published, p.published_at,
	p.category_id, p.created_at, p.updated_at,
	c.id, c.name, c.slug, c.description, c.created_at, c.updated_at`

func scanPostWithCategory(scanner interface{ Scan(...any) error }) (*Post, error) {
	var p Post
	var c categoryservice.Category
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.Published, &p.PublishedAt,
		&p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Category = &c
	return &p, nil
}

// whereClause builds the sparse filter as a conjunction of equality
// constraints over the parameters actually supplied.
func whereClause(f Filters) (string, []any) {
	var conditions []string
	var args []any

	if f.Published != nil {
		args = append(args, *f.Published)
		conditions = append(conditions, fmt.Sprintf("p.published = $%d", len(args)))
	}

	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		conditions = append(conditions, fmt.Sprintf("p.category_id = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

// getAll fetches one page of posts plus the total matching count. The two
// queries are separate round-trips and are not point-in-time consistent
// with each other; a count that moves between them under concurrent writes
// is acceptable.
func (m *PostModel) getAll(ctx context.Context, f Filters) ([]Post, Metadata, error) {
	where, args := whereClause(f)

	var totalCount int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM posts p %s", where)
	err := m.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount)
	if err != nil {
		return nil, Metadata{}, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN categories c ON c.id = p.category_id
		%s
		ORDER BY p.created_at DESC
		LIMIT $%d OFFSET $%d`, postWithCategoryColumns, where, len(args)+1, len(args)+2)

	rows, err := m.db.QueryContext(ctx, query, append(args, f.Limit, f.offset())...)
	if err != nil {
		return nil, Metadata{}, err
	}
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		p, err := scanPostWithCategory(rows)
		if err != nil {
			return nil, Metadata{}, err
		}
		posts = append(posts, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, Metadata{}, err
	}

	return posts, calculateMetadata(totalCount, f.Page, f.Limit), nil
}

// getById returns the post joined with its category regardless of publish
// state. Intended for administrative access.
func (m *PostModel) getById(ctx context.Context, id uuid.UUID) (*Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`, postWithCategoryColumns)

	p, err := scanPostWithCategory(m.db.QueryRowContext(ctx, query, id))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return p, nil
}

// getBySlug is the public lookup: it only ever returns published posts, so
// a draft is indistinguishable from a post that does not exist.
func (m *PostModel) getBySlug(ctx context.Context, slug string) (*Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN categories c ON c.id = p.category_id
		WHERE p.slug = $1 AND p.published = true`, postWithCategoryColumns)

	p, err := scanPostWithCategory(m.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return p, nil
}

func (m *PostModel) insert(ctx context.Context, p *Post) error {
	query := `
		INSERT INTO posts (title, slug, excerpt, content, published, published_at, category_id)
		VALUES ($1, $2, $3, $4, $5, CASE WHEN $5::boolean THEN now() END, $6)
		RETURNING id, published_at, created_at, updated_at`

	err := m.db.QueryRowContext(ctx, query, p.Title, p.Slug, p.Excerpt, p.Content, p.Published, p.CategoryID).
		Scan(&p.ID, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		switch {
		case common.UniqueViolation(err, "posts_slug_key"):
			return ErrDuplicateSlug
		case common.ForeignKeyViolation(err, "posts_category_id_fkey"):
			return ErrCategoryNotFound
		default:
			return err
		}
	}

	return nil
}

// update replaces the post's fields. When firstPublish is set the write also
// stamps published_at; otherwise published_at is carried over untouched, so
// unpublishing never clears it.
func (m *PostModel) update(ctx context.Context, p *Post, firstPublish bool) error {
	query := `
		UPDATE posts
		SET title = $1, slug = $2, excerpt = $3, content = $4, published = $5,
			category_id = $6,
			published_at = CASE WHEN $7::boolean THEN now() ELSE published_at END,
			updated_at = now()
		WHERE id = $8
		RETURNING published_at, created_at, updated_at`

	err := m.db.QueryRowContext(ctx, query, p.Title, p.Slug, p.Excerpt, p.Content, p.Published, p.CategoryID, firstPublish, p.ID).
		Scan(&p.PublishedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return common.ErrRecordNotFound
		case common.UniqueViolation(err, "posts_slug_key"):
			return ErrDuplicateSlug
		case common.ForeignKeyViolation(err, "posts_category_id_fkey"):
			return ErrCategoryNotFound
		default:
			return err
		}
	}

	return nil
}

func (m *PostModel) delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM posts
		WHERE id = $1`

	res, err := m.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
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
