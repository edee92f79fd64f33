package auth

import (
	"net/http"

	"todo-api/internal/webutil"
	"todo-api/middleware"
	"todo-api/models"
)

type AuthHandlers struct {
	Service *AuthService
}

func NewAuthHandlers(service *AuthService) *AuthHandlers {
	return &AuthHandlers{Service: service}
}

// Token handles POST /auth/token. The body is form-encoded username and
// password; the response is a bearer token.
func (h *AuthHandlers) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		webutil.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.Service.Authenticate(r.Context(), username, password)
	if err != nil {
		webutil.WriteServiceError(w, err)
		return
	}

	token, err := h.Service.IssueToken(user)
	if err != nil {
		webutil.WriteServiceError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, token)
}

// Me handles GET /auth/me and returns the authenticated principal.
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.PrincipalFromContext(r.Context())
	if user == nil {
		webutil.WriteServiceError(w, models.ErrNotAuthenticated)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, user)
}
