package categoryservice

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryWithCount is the listing shape: a category annotated with the
// number of posts that reference it.
type CategoryWithCount struct {
	Category
	PostCount int `json:"postCount"`
}

type CategoryModel struct {
	db *sql.DB
}

type CategoryService struct {
	m *CategoryModel
}
