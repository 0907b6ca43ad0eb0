package app

import (
	"fmt"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
	"github.com/jmoiron/sqlx"

	"github.com/Arthur-Gab/graphql-task-api/internal/config"
	"github.com/Arthur-Gab/graphql-task-api/internal/db"
	"github.com/Arthur-Gab/graphql-task-api/internal/graph"
	"github.com/Arthur-Gab/graphql-task-api/internal/middleware"
	"github.com/Arthur-Gab/graphql-task-api/internal/repository"
	"github.com/Arthur-Gab/graphql-task-api/internal/service"
)

type App struct {
	Cfg         *config.Config
	DB          *sqlx.DB
	AuthService *service.AuthService
	UserService *service.UserService
	TodoService *service.TodoService
	Schema      graphql.Schema
}

func New(cfg *config.Config) (*App, error) {
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	todoRepository := repository.NewTodoRepository(database)

	// Services
	authService := service.NewAuthService(userRepository, cfg.JWTSecret, cfg.JWTExpiry)
	userService := service.NewUserService(userRepository, authService)
	todoService := service.NewTodoService(todoRepository)

	schema, err := graph.NewSchema(&graph.Resolver{
		Users: userService,
		Todos: todoService,
		Auth:  authService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build schema: %w", err)
	}

	return &App{
		Cfg:         cfg,
		DB:          database,
		AuthService: authService,
		UserService: userService,
		TodoService: todoService,
		Schema:      schema,
	}, nil
}

// Handler mounts the GraphQL endpoint behind request logging and token
// resolution.
func (a *App) Handler() http.Handler {
	graphqlHandler := handler.New(&handler.Config{
		Schema:   &a.Schema,
		Pretty:   a.Cfg.IsDevelopment(),
		GraphiQL: a.Cfg.IsDevelopment(),
	})

	mux := http.NewServeMux()
	mux.Handle("/graphql", graphqlHandler)

	return middleware.Chain(mux,
		middleware.RequestLogging,
		middleware.AuthMiddleware(a.AuthService, a.UserService),
	)
}

func (a *App) Close() error {
	return db.Close(a.DB)
}
