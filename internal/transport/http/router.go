package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"socialnet/internal/handler"
	"socialnet/internal/httputil"
	authmw "socialnet/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler   *handler.AuthHandler
	UserHandler   *handler.UserHandler
	FriendHandler *handler.FriendHandler
	GroupHandler  *handler.GroupHandler
	PostHandler   *handler.PostHandler
	StoryHandler  *handler.StoryHandler
	ChatHandler   *handler.ChatHandler
	RateLimiter   *authmw.RateLimiter
	JWTSecret     string
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cfg.RateLimiter.Handler)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	// Public routes - no authentication required
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.AuthHandler.Register)
		r.Post("/login", cfg.AuthHandler.Login)
	})

	// Public reads with optional authentication. Anonymous callers get the
	// public tier; the visibility resolver decides the rest.
	r.Group(func(r chi.Router) {
		r.Use(authmw.OptionalAuthMiddleware(cfg.JWTSecret))

		r.Get("/users/{id}", cfg.UserHandler.GetProfile)
		r.Get("/posts/{id}", cfg.PostHandler.Get)
		r.Get("/posts/{id}/comments", cfg.PostHandler.ListComments)
		r.Get("/stories", cfg.StoryHandler.List)
		r.Get("/stories/{id}", cfg.StoryHandler.Get)
	})

	// Protected routes - require authentication
	r.Group(func(r chi.Router) {
		r.Use(authmw.AuthMiddleware(cfg.JWTSecret))

		// Current user endpoints
		r.Get("/me", cfg.AuthHandler.Me)
		r.Post("/users/me/avatar", cfg.UserHandler.UploadAvatar)
		r.Delete("/users/{id}", cfg.UserHandler.Delete)

		// Friendship endpoints
		r.Post("/friends/requests", cfg.FriendHandler.SendRequest)
		r.Post("/friends/requests/{requesterID}/respond", cfg.FriendHandler.Respond)
		r.Get("/friends", cfg.FriendHandler.List)
		r.Delete("/friends/{userID}", cfg.FriendHandler.Unfriend)

		// Group endpoints
		r.Post("/groups", cfg.GroupHandler.Create)
		r.Post("/groups/{id}/members", cfg.GroupHandler.AddMember)
		r.Delete("/groups/{id}/members/{userID}", cfg.GroupHandler.RemoveMember)
		r.Delete("/groups/{id}", cfg.GroupHandler.Delete)

		// Post endpoints
		r.Post("/posts", cfg.PostHandler.Create)
		r.Put("/posts/{id}", cfg.PostHandler.Update)
		r.Delete("/posts/{id}", cfg.PostHandler.Delete)
		r.Post("/posts/{id}/like", cfg.PostHandler.ToggleLike)
		r.Post("/posts/{id}/comments", cfg.PostHandler.CreateComment)

		// Story endpoints
		r.Post("/stories", cfg.StoryHandler.Create)
		r.Post("/stories/{id}/reactions", cfg.StoryHandler.React)
		r.Delete("/stories/{id}", cfg.StoryHandler.Delete)

		// Messaging endpoints
		r.Post("/messages", cfg.ChatHandler.Send)
		r.Get("/messages/{userID}", cfg.ChatHandler.Conversation)
	})

	return r
}
