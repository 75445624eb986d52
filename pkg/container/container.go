package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"blog-backend/internal/config"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/pkg/jwt"

	"blog-backend/internal/domains/user"
	userHandler "blog-backend/internal/domains/user/handler"
	userRepo "blog-backend/internal/domains/user/repository"
	userService "blog-backend/internal/domains/user/service"

	postHandler "blog-backend/internal/domains/post/handler"
	postRepo "blog-backend/internal/domains/post/repository"
	postService "blog-backend/internal/domains/post/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application and is the root of
// the dependency graph. All members are singletons living for the whole
// process.
type Container struct {
	// Infrastructure layer
	Config     *config.Config
	DB         *database.PostgresDB
	JWTManager *jwt.Manager

	// Repository layer
	UserRepo user.Repository
	PostRepo postRepo.PostRepository

	// Service layer
	UserService user.Service
	PostService postService.ServiceInterface

	// Handler layer
	UserHandler *userHandler.UserHandler
	PostHandler *postHandler.PostHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer initializes the whole dependency graph, in order:
// config → infrastructure → repositories → services → handlers.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE AUTH
	// ========================================
	tokenExpiry := time.Duration(cfg.JWT.AccessTokenExpiry) * time.Minute
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, tokenExpiry)

	// ========================================
	// STEP 4: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")

	c.UserRepo = userRepo.NewPostgresUserRepository(db.Pool)
	c.PostRepo = postRepo.NewPostgresPostRepository(db.Pool)

	// ========================================
	// STEP 5: INITIALIZE SERVICES
	// ========================================
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, tokenExpiry)
	c.PostService = postService.NewPostService(c.PostRepo)

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
	// ========================================
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService, cfg.App.BaseURL+"/api/v1/posts")

	log.Println("✅ Container ready")
	return c, nil
}

// Cleanup releases infrastructure resources on shutdown
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
