package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sushihentaime/pressroom/internal/categoryservice"
	"github.com/sushihentaime/pressroom/internal/postservice"
)

type errorResponse struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}

func TestHealthCheck(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	status, body := ts.get(t, "/healthcheck")
	assert.Equal(t, http.StatusOK, status)

	var got map[string]any
	assert.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "available", got["status"])
}

// TestContentAPIScenario walks the category and post lifecycle end to end
// over the HTTP surface.
func TestContentAPIScenario(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	// create the category
	status, body := ts.post(t, "/categories", map[string]any{"name": "Tech", "slug": "tech"})
	assert.Equal(t, http.StatusCreated, status)

	var category categoryservice.Category
	assert.NoError(t, json.Unmarshal(body, &category))
	assert.Equal(t, "tech", category.Slug)

	// create a draft post
	status, body = ts.post(t, "/posts", map[string]any{
		"title":      "Hi",
		"slug":       "hi",
		"content":    "x",
		"published":  false,
		"categoryId": category.ID.String(),
	})
	assert.Equal(t, http.StatusCreated, status)

	var post postservice.Post
	assert.NoError(t, json.Unmarshal(body, &post))
	assert.Nil(t, post.PublishedAt)

	// the draft is invisible through the public slug lookup
	status, _ = ts.get(t, "/posts/by-slug/hi")
	assert.Equal(t, http.StatusNotFound, status)

	// but visible through the administrative lookup
	status, _ = ts.get(t, "/posts/"+post.ID.String())
	assert.Equal(t, http.StatusOK, status)

	// publish the post
	updatePayload := map[string]any{
		"title":      "Hi",
		"slug":       "hi",
		"content":    "x",
		"published":  true,
		"categoryId": category.ID.String(),
	}
	status, body = ts.put(t, "/posts/"+post.ID.String(), updatePayload)
	assert.Equal(t, http.StatusOK, status)

	var published postservice.Post
	assert.NoError(t, json.Unmarshal(body, &published))
	assert.NotNil(t, published.PublishedAt)

	// now the public lookup succeeds
	status, body = ts.get(t, "/posts/by-slug/hi")
	assert.Equal(t, http.StatusOK, status)

	var public postservice.Post
	assert.NoError(t, json.Unmarshal(body, &public))
	assert.Equal(t, "Tech", public.Category.Name)

	// unpublishing keeps the original publish timestamp
	updatePayload["published"] = false
	status, body = ts.put(t, "/posts/"+post.ID.String(), updatePayload)
	assert.Equal(t, http.StatusOK, status)

	var unpublished postservice.Post
	assert.NoError(t, json.Unmarshal(body, &unpublished))
	assert.NotNil(t, unpublished.PublishedAt)
	assert.True(t, published.PublishedAt.Equal(*unpublished.PublishedAt))

	// the category still owns a post, so the delete is rejected
	status, _ = ts.delete(t, "/categories/"+category.ID.String())
	assert.Equal(t, http.StatusConflict, status)

	// once the post is gone the category can be deleted
	status, _ = ts.delete(t, "/posts/"+post.ID.String())
	assert.Equal(t, http.StatusOK, status)

	status, _ = ts.delete(t, "/categories/"+category.ID.String())
	assert.Equal(t, http.StatusOK, status)
}

func TestCreateCategoryValidationResponse(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	status, body := ts.post(t, "/categories", map[string]any{"name": "", "slug": "Bad Slug"})
	assert.Equal(t, http.StatusBadRequest, status)

	var got errorResponse
	assert.NoError(t, json.Unmarshal(body, &got))
	assert.NotEmpty(t, got.Message)
	assert.Contains(t, got.Details, "name")
	assert.Contains(t, got.Details, "slug")
}

func TestCreateCategoryConflictResponse(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	payload := map[string]any{"name": "Tech", "slug": "tech"}

	status, _ := ts.post(t, "/categories", payload)
	assert.Equal(t, http.StatusCreated, status)

	status, body := ts.post(t, "/categories", payload)
	assert.Equal(t, http.StatusConflict, status)

	var got errorResponse
	assert.NoError(t, json.Unmarshal(body, &got))
	assert.Nil(t, got.Details)
}

func TestCategoryNotFoundResponses(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	// a well-formed but unknown id
	status, _ := ts.get(t, "/categories/8a4c7cbe-6f2a-4a3d-9c7e-0b1d2e3f4a5b")
	assert.Equal(t, http.StatusNotFound, status)

	// a malformed id cannot name any record
	status, _ = ts.get(t, "/categories/42")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListPostsPagination(t *testing.T) {
	app, db := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	var categoryID string
	err := db.QueryRow(`
		INSERT INTO categories (name, slug)
		VALUES ('Tech', 'tech')
		RETURNING id`).Scan(&categoryID)
	assert.NoError(t, err)

	for i := 0; i < 12; i++ {
		_, err := db.Exec(`
			INSERT INTO posts (title, slug, content, published, published_at, category_id, created_at)
			VALUES ($1, $2, 'body', true, now() - $4::interval, $3, now() - $4::interval)`,
			fmt.Sprintf("Post %d", i), fmt.Sprintf("post-%d", i), categoryID, fmt.Sprintf("%d minutes", i))
		assert.NoError(t, err)
	}

	status, body := ts.get(t, "/posts")
	assert.Equal(t, http.StatusOK, status)

	var list postservice.PostList
	assert.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list.Posts, 10)
	assert.Equal(t, postservice.Metadata{Page: 1, Limit: 10, TotalCount: 12, TotalPages: 2}, list.Pagination)
	assert.Equal(t, "post-0", list.Posts[0].Slug)
	assert.NotNil(t, list.Posts[0].PublishedAt)

	status, body = ts.get(t, "/posts?page=2")
	assert.Equal(t, http.StatusOK, status)
	assert.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list.Posts, 2)

	// a page past the end is empty but keeps accurate metadata
	status, body = ts.get(t, "/posts?page=9&limit=5")
	assert.Equal(t, http.StatusOK, status)
	assert.NoError(t, json.Unmarshal(body, &list))
	assert.Empty(t, list.Posts)
	assert.Equal(t, postservice.Metadata{Page: 9, Limit: 5, TotalCount: 12, TotalPages: 3}, list.Pagination)

	status, body = ts.get(t, "/posts?categoryId="+categoryID+"&published=true&limit=100")
	assert.Equal(t, http.StatusOK, status)
	assert.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, 12, list.Pagination.TotalCount)
}

func TestCreatePostReferentialError(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	status, body := ts.post(t, "/posts", map[string]any{
		"title":      "Orphan",
		"slug":       "orphan",
		"content":    "body",
		"published":  false,
		"categoryId": "4d1f6a2b-9c3e-4f5a-8b7c-6d5e4f3a2b1c",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	var got errorResponse
	assert.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "referenced category does not exist", got.Message)
}

func TestUnknownFieldIsRejected(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	status, _ := ts.post(t, "/categories", map[string]any{"name": "Tech", "slug": "tech", "color": "red"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestMethodNotAllowed(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	status, _ := ts.do(t, http.MethodPatch, "/categories", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, status)
}
