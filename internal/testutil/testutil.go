package testutil

import (
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/Arthur-Gab/graphql-task-api/internal/db"
	"github.com/Arthur-Gab/graphql-task-api/internal/graph"
	"github.com/Arthur-Gab/graphql-task-api/internal/middleware"
	"github.com/Arthur-Gab/graphql-task-api/internal/model"
	"github.com/Arthur-Gab/graphql-task-api/internal/repository"
	"github.com/Arthur-Gab/graphql-task-api/internal/service"
)

const JWTSecret = "test-secret"

// NewDB opens a throwaway SQLite database through the production db.Init
// path, with all migrations applied. It is removed with the test's temp dir.
func NewDB(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	database, err := db.Init("sqlite", path)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close(database)
	})

	err = db.RunMigrations(database.DB, "sqlite")
	require.NoError(t, err)

	return database
}

// Harness wires repositories, services, the schema and the HTTP handler
// around a fresh test database, mirroring app.New.
type Harness struct {
	DB      *sqlx.DB
	Users   *service.UserService
	Todos   *service.TodoService
	Auth    *service.AuthService
	Schema  graphql.Schema
	Handler http.Handler
}

func NewHarness(t *testing.T) *Harness {
	t.Helper()

	database := NewDB(t)

	userRepository := repository.NewUserRepository(database)
	todoRepository := repository.NewTodoRepository(database)

	authService := service.NewAuthService(userRepository, JWTSecret, time.Hour)
	userService := service.NewUserService(userRepository, authService)
	todoService := service.NewTodoService(todoRepository)

	schema, err := graph.NewSchema(&graph.Resolver{
		Users: userService,
		Todos: todoService,
		Auth:  authService,
	})
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.Handle("/graphql", handler.New(&handler.Config{Schema: &schema}))

	return &Harness{
		DB:      database,
		Users:   userService,
		Todos:   todoService,
		Auth:    authService,
		Schema:  schema,
		Handler: middleware.Chain(mux, middleware.AuthMiddleware(authService, userService)),
	}
}

// CreateUser registers a user through the service layer.
func (h *Harness) CreateUser(t *testing.T, email, password, username string) *model.User {
	t.Helper()

	user, err := h.Users.Create(email, password, username)
	require.NoError(t, err)
	return user
}

// SignIn returns a bearer token for an existing user.
func (h *Harness) SignIn(t *testing.T, email, password string) string {
	t.Helper()

	payload, err := h.Auth.SignIn(email, password)
	require.NoError(t, err)
	return payload.Token
}
