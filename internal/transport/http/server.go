package http

import (
	"context"
	"fmt"
	"log"
	stdhttp "net/http"

	"socialnet/internal/authz"
	"socialnet/internal/config"
	"socialnet/internal/database"
	"socialnet/internal/handler"
	"socialnet/internal/repository"
	"socialnet/internal/service"
	authmw "socialnet/internal/transport/http/middleware"
)

// Run loads configuration, prepares the database, wires the layers together,
// and serves until the listener fails.
func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	friendRepo := repository.NewFriendRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	postRepo := repository.NewPostRepository(db)
	storyRepo := repository.NewStoryRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Visibility rules live in one resolver shared by posts and stories.
	resolver := authz.NewResolver(friendRepo, groupRepo)

	// Services
	authService := service.NewAuthService(userRepo, cfg)
	userService := service.NewUserService(userRepo)
	friendService := service.NewFriendService(friendRepo, userRepo)
	groupService := service.NewGroupService(groupRepo, userRepo)
	postService := service.NewPostService(postRepo, resolver)
	storyService := service.NewStoryService(storyRepo, resolver)
	chatService := service.NewChatService(messageRepo, friendRepo, userRepo)

	mediaService, err := service.NewMediaService(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to init media service: %w", err)
	}

	// Handlers
	router := NewRouter(RouterConfig{
		AuthHandler:   handler.NewAuthHandler(authService, userService),
		UserHandler:   handler.NewUserHandler(userService, mediaService),
		FriendHandler: handler.NewFriendHandler(friendService),
		GroupHandler:  handler.NewGroupHandler(groupService),
		PostHandler:   handler.NewPostHandler(postService),
		StoryHandler:  handler.NewStoryHandler(storyService),
		ChatHandler:   handler.NewChatHandler(chatService),
		RateLimiter:   authmw.NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst),
		JWTSecret:     cfg.JWTSecret,
	})

	addr := ":" + cfg.ServerPort
	log.Printf("Starting server on %s", addr)
	return stdhttp.ListenAndServe(addr, router)
}
