// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/DylanDHubert/hotmess/internal/cache"
	"github.com/DylanDHubert/hotmess/internal/config"
	"github.com/DylanDHubert/hotmess/internal/database"
	"github.com/DylanDHubert/hotmess/internal/middleware"
	"github.com/DylanDHubert/hotmess/internal/repository"
	"github.com/DylanDHubert/hotmess/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo       repository.UserRepository
	postRepo       repository.PostRepository
	commentRepo    repository.CommentRepository
	followRepo     repository.FollowRepository
	engagementRepo repository.EngagementRepository
	chatRepo       repository.ChatRepository

	postService       *service.PostService
	userService       *service.UserService
	commentService    *service.CommentService
	followService     *service.FollowService
	engagementService *service.EngagementService
	chatService       *service.ChatService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	middleware.InitMiddleware(cfg)

	s := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: fiberprometheus.New("hotmess-api"),
		userRepo:       repository.NewUserRepository(db),
		postRepo:       repository.NewPostRepository(db),
		commentRepo:    repository.NewCommentRepository(db),
		followRepo:     repository.NewFollowRepository(db),
		engagementRepo: repository.NewEngagementRepository(db),
		chatRepo:       repository.NewChatRepository(db),
	}

	s.postService = service.NewPostService(s.postRepo)
	s.userService = service.NewUserService(s.userRepo, s.followRepo)
	s.commentService = service.NewCommentService(s.commentRepo, s.postRepo)
	s.followService = service.NewFollowService(s.followRepo, s.userRepo)
	s.engagementService = service.NewEngagementService(s.engagementRepo)
	s.chatService = service.NewChatService(s.chatRepo, s.userRepo)

	return s, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Distributed tracing
	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS runs before middlewares that can short-circuit (e.g. limiter) so
	// browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they are handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	api.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Public post routes (browse). AuthOptional resolves the viewer when a
	// token is present so liked/shared flags reflect the caller.
	publicPosts := api.Group("/posts", middleware.AuthOptional)
	publicPosts.Get("/", s.GetPosts)
	publicPosts.Get("/:id/comments", s.GetComments)
	publicPosts.Get("/:id", s.GetPost)

	// Public user routes
	users := api.Group("/users", middleware.AuthOptional)
	users.Get("/:id/counts", s.GetUserCounts)
	users.Get("/:id/posts", s.GetUserPosts)
	users.Get("/:id", s.GetUser)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired)

	// Post authoring and engagement
	posts := protected.Group("/posts")
	posts.Post("/", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_post"), s.CreatePost)
	posts.Post("/:id/like", s.ToggleLike)
	posts.Get("/:id/like", s.GetLikeState)
	posts.Post("/:id/share", s.ToggleShare)
	posts.Get("/:id/share", s.GetShareState)
	posts.Post("/:id/comments", middleware.RateLimit(
		s.redis, 20, time.Minute, "create_comment"), s.CreateComment)

	// Follow routes
	follow := protected.Group("/follow")
	follow.Get("/check/:userId", s.CheckFollowing)
	follow.Post("/:userId", s.SetFollow)

	// Conversation routes
	conversations := protected.Group("/conversations")
	conversations.Get("/", s.GetConversations)
	conversations.Post("/with/:userId", s.GetOrCreateConversation)
	conversations.Get("/:id/messages", s.GetMessages)
	conversations.Post("/:id/messages", middleware.RateLimit(
		s.redis, 60, time.Minute, "send_message"), s.SendMessage)
}

// App builds the configured Fiber application.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "hotmess-api",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// Shutdown releases server-held resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			middleware.Logger.ErrorContext(ctx, "redis close failed", "error", err)
		}
	}
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
