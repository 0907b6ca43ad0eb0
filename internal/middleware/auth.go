package middleware

import (
	"net/http"
	"strings"

	"github.com/Arthur-Gab/graphql-task-api/internal/ctxkeys"
	"github.com/Arthur-Gab/graphql-task-api/internal/service"
)

// AuthMiddleware resolves the Authorization header to a user and stores it in
// the request context. Requests without a valid token continue anonymously;
// scope enforcement happens per resolver, not here.
//
// The header may carry either the raw token or the "Bearer <token>" form.
func AuthMiddleware(authService *service.AuthService, userService *service.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(r.Header.Get("Authorization"))
			token = strings.TrimPrefix(token, "Bearer ")

			userID, ok := authService.VerifyJWT(token)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			// Token verified but the user may have been deleted since issuance
			user, err := userService.ByID(userID)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxkeys.WithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
