package middleware

import (
	"context"
	"net/http"
	"strings"

	"todo-api/internal/webutil"
	"todo-api/models"
)

type contextKey string

const principalKey contextKey = "principal"

// TokenVerifier resolves a bearer token to an active user.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, tokenStr string) (*models.User, error)
}

type Middleware struct {
	Verifier TokenVerifier
}

func NewMiddleware(verifier TokenVerifier) *Middleware {
	return &Middleware{Verifier: verifier}
}

// RequireAuth gates a handler behind bearer-token authentication. The
// resolved principal is stored in the request context; it is derived fresh
// on every request, never cached.
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			webutil.WriteServiceError(w, models.ErrNotAuthenticated)
			return
		}

		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			webutil.WriteServiceError(w, models.ErrNotAuthenticated)
			return
		}

		user, err := m.Verifier.VerifyToken(r.Context(), tokenStr)
		if err != nil {
			webutil.WriteServiceError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// PrincipalFromContext returns the authenticated user stored by RequireAuth,
// or nil outside an authenticated request.
func PrincipalFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(principalKey).(*models.User)
	return user
}
