package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Ramzi-dr/peoplecounting/internal/config"
	"github.com/Ramzi-dr/peoplecounting/internal/handler"
	"github.com/Ramzi-dr/peoplecounting/internal/middleware"
	"github.com/Ramzi-dr/peoplecounting/internal/repository"
	"github.com/Ramzi-dr/peoplecounting/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Handlers groups the HTTP handlers wired into the router
type Handlers struct {
	User      *handler.UserHandler
	SuperUser *handler.SuperUserHandler
}

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	mongo  *mongo.Client
}

// New creates a new server instance. The Mongo client is established once
// here and threaded through handler construction; handlers never reconnect.
func New(cfg *config.Config) (*Server, error) {
	mongoClient, err := Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	users := repository.NewUserRepository(db)
	userService := service.NewUserService(users, cfg)
	handlers := &Handlers{
		User:      handler.NewUserHandler(userService),
		SuperUser: handler.NewSuperUserHandler(userService),
	}

	router := setupRouter(cfg, handlers)

	return &Server{
		cfg:    cfg,
		router: router,
		mongo:  mongoClient,
	}, nil
}

func Connect(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// Close disconnects MongoDB client
func (s *Server) Close() error {
	if s.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.mongo.Disconnect(ctx)
	}
	return nil
}

// Run starts the server
func (s *Server) Run() error {
	fmt.Printf("Server running on %s\n", s.cfg.Server.Address())
	return s.router.Run(s.cfg.Server.Address())
}

func setupRouter(cfg *config.Config, h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetTrustedProxies(nil)

	// Every route sits behind the access gate: origin filter first, then
	// static basic auth.
	r.Use(middleware.OriginFilter(cfg.Access))
	r.Use(middleware.BasicAuth(cfg.Access))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend OK")
	})

	api := r.Group("/api")

	users := api.Group("/users")
	{
		users.POST("", h.User.Register)
		users.GET("", h.User.List)
		users.PUT("", h.User.Update)
		users.DELETE("", h.User.Delete)
	}

	superuser := api.Group("/superuser")
	{
		superuser.PUT("/reset-password", h.SuperUser.ResetPassword)
	}

	return r
}
