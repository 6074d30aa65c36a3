package main

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

func (app *application) routes() http.Handler {
	router := chi.NewRouter()

	router.NotFound(app.notFoundErrorResponse)
	router.MethodNotAllowed(app.methodNotAllowedErrorResponse)

	router.Get("/healthcheck", app.healthCheckHandler)

	// category resource
	router.Get("/categories", app.listCategoriesHandler)
	router.Post("/categories", app.createCategoryHandler)
	router.Get("/categories/{id}", app.getCategoryHandler)
	router.Put("/categories/{id}", app.updateCategoryHandler)
	router.Delete("/categories/{id}", app.deleteCategoryHandler)

	// post resource
	router.Get("/posts", app.listPostsHandler)
	router.Post("/posts", app.createPostHandler)
	router.Get("/posts/by-slug/{slug}", app.getPostBySlugHandler)
	router.Get("/posts/{id}", app.getPostHandler)
	router.Put("/posts/{id}", app.updatePostHandler)
	router.Delete("/posts/{id}", app.deletePostHandler)

	c := cors.New(cors.Options{
		AllowedOrigins: strings.Fields(app.config.CORSTrustedOrigins),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})

	return app.recoverPanic(app.logRequest(c.Handler(router)))
}
