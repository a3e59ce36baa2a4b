package middleware

import (
	"context"
	"net/http"

	"github.com/mihara/courseflow/internal/model"
	"github.com/mihara/courseflow/internal/services/auth"
)

const userContextKey contextKey = "user"

// GetUser retrieves the authenticated user from the request context
// Returns nil if no user is authenticated
func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

// Auth returns middleware that requires authentication.
// Unauthenticated requests are redirected to the login page with a flash.
func Auth(authService *auth.Service, secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := userFromSession(r, authService, secret)
			if user == nil {
				SetFlash(w, "error", "ログインしてください")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth returns middleware that attempts authentication but doesn't require it
// Sets user in context if authenticated, nil otherwise
func OptionalAuth(authService *auth.Service, secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := userFromSession(r, authService, secret)
			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func userFromSession(r *http.Request, authService *auth.Service, secret []byte) *model.User {
	token := SessionToken(r, secret)
	if token == "" {
		return nil
	}

	user, err := authService.CurrentUser(r.Context(), token)
	if err != nil {
		return nil
	}
	return user
}
