package postservice

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/sushihentaime/pressroom/internal/categoryservice"
)

type Post struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Slug  string    `json:"slug"`
	// Excerpt is a short public summary, capped at 200 characters.
	Excerpt string `json:"excerpt"`
	// Content is stored in Markdown format.
	Content   string `json:"content"`
	Published bool   `json:"published"`
	// PublishedAt is stamped the first time Published flips to true and is
	// never cleared afterwards, not even when the post is unpublished again.
	PublishedAt *time.Time                `json:"publishedAt"`
	CategoryID  uuid.UUID                 `json:"categoryId"`
	Category    *categoryservice.Category `json:"category,omitempty"`
	CreatedAt   time.Time                 `json:"createdAt"`
	UpdatedAt   time.Time                 `json:"updatedAt"`
}

// PostList is the listing envelope: one page of posts plus the pagination
// metadata computed from the independent total count.
type PostList struct {
	Posts      []Post   `json:"posts"`
	Pagination Metadata `json:"pagination"`
}

type PostModel struct {
	db *sql.DB
}

type PostService struct {
	m *PostModel
}
