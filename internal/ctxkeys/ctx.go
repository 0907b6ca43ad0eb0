package ctxkeys

import (
	"context"

	"github.com/Arthur-Gab/graphql-task-api/internal/model"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	UserKey contextKey = "user"
)

// User returns the authenticated user for this request, or nil.
func User(ctx context.Context) *model.User {
	user, _ := ctx.Value(UserKey).(*model.User)
	return user
}

func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// IsUserLoggedIn is the authenticated scope: true iff a bearer token
// resolved to a known user.
func IsUserLoggedIn(ctx context.Context) bool {
	return User(ctx) != nil
}
