package postservice

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/sushihentaime/pressroom/internal/common"
)

func NewPostService(db *sql.DB) *PostService {
	return &PostService{m: newPostModel(db)}
}

type CreatePostRequest struct {
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
	// Published is a pointer so that an absent field can be told apart from
	// an explicit false.
	Published  *bool  `json:"published"`
	CategoryID string `json:"categoryId"`
}

func (req *CreatePostRequest) validate() error {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateSlug(v, req.Slug)
	validateExcerpt(v, req.Excerpt)
	validateContent(v, req.Content)
	validatePublished(v, req.Published)
	validateCategoryID(v, req.CategoryID)
	if !v.Valid() {
		return v.ValidationError()
	}

	return nil
}

// ListPosts returns one page of posts, newest first, each joined with its
// category, plus the pagination metadata. A page beyond the last one yields
// an empty list with accurate metadata rather than an error.
func (s *PostService) ListPosts(ctx context.Context, f Filters) (*PostList, error) {
	f = f.normalize()

	posts, metadata, err := s.m.getAll(ctx, f)
	if err != nil {
		return nil, err
	}

	return &PostList{Posts: posts, Pagination: metadata}, nil
}

// GetPostByID returns the post regardless of publish state.
func (s *PostService) GetPostByID(ctx context.Context, id uuid.UUID) (*Post, error) {
	return s.m.getById(ctx, id)
}

// GetPostBySlug returns the post only if it is published. Drafts behave
// exactly like missing posts so that their slugs cannot be probed.
func (s *PostService) GetPostBySlug(ctx context.Context, slug string) (*Post, error) {
	return s.m.getBySlug(ctx, slug)
}

// CreatePost validates the payload and inserts a new post. A post created
// as published gets its publishedAt stamped as part of the same write.
func (s *PostService) CreatePost(ctx context.Context, req *CreatePostRequest) (*Post, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	post := &Post{
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		Published:  *req.Published,
		CategoryID: uuid.MustParse(req.CategoryID),
	}

	if err := s.m.insert(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// UpdatePost validates the payload and replaces the post's fields. The
// existing row is fetched first to detect the false-to-true publish
// transition: only that transition stamps publishedAt, and nothing ever
// clears it.
func (s *PostService) UpdatePost(ctx context.Context, id uuid.UUID, req *CreatePostRequest) (*Post, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	existing, err := s.m.getById(ctx, id)
	if err != nil {
		return nil, err
	}

	post := &Post{
		ID:         id,
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		Published:  *req.Published,
		CategoryID: uuid.MustParse(req.CategoryID),
	}

	firstPublish := post.Published && !existing.Published

	if err := s.m.update(ctx, post, firstPublish); err != nil {
		return nil, err
	}

	return post, nil
}

// DeletePost removes a post. Posts are leaves, so there is no referential
// guard here.
func (s *PostService) DeletePost(ctx context.Context, id uuid.UUID) error {
	return s.m.delete(ctx, id)
}
