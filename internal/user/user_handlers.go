package user

import (
	"encoding/json"
	"net/http"

	"todo-api/internal/webutil"
	"todo-api/models"
)

type UserHandlers struct {
	Service *UserService
}

func NewUserHandlers(service *UserService) *UserHandlers {
	return &UserHandlers{Service: service}
}

// Create handles POST /users.
func (h *UserHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var in models.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		webutil.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	created, err := h.Service.Create(r.Context(), in)
	if err != nil {
		webutil.WriteServiceError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, created)
}
