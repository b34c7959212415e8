package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hazelbrook/bookshelf-api/internal/api"
	apiMiddleware "github.com/hazelbrook/bookshelf-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	bookHandler := api.NewBookHandler(app.bookStore, app.logger)
	userHandler := api.NewUserHandler(app.userStore, app.logger)
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		app.tokenLifetime(),
		app.logger,
	)
	favoriteHandler := api.NewFavoriteHandler(app.favoriteStore, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Catalog endpoints (public)
	r.Get("/books", bookHandler.ListBooks)
	r.Get("/books/{id}", bookHandler.GetBook)
	r.Post("/books", bookHandler.CreateBook)
	r.Patch("/books/{id}", bookHandler.UpdateBook)
	r.Delete("/books/{id}", bookHandler.DeleteBook)

	// Account endpoints (public)
	r.Post("/users", userHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Delete("/auth/logout", authHandler.Logout)

	// Favorites endpoints, guarded by the auth gate
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Get("/favorites", favoriteHandler.ListFavorites)
		r.Get("/favorites/check", favoriteHandler.CheckFavorite)
		r.Post("/favorites", favoriteHandler.AddFavorite)
		r.Delete("/favorites", favoriteHandler.RemoveFavorite)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
