package todo

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"todo-api/internal/webutil"
	"todo-api/middleware"
	"todo-api/models"

	"github.com/gorilla/mux"
)

type TodoHandlers struct {
	Service *TodoService
}

func NewTodoHandlers(service *TodoService) *TodoHandlers {
	return &TodoHandlers{Service: service}
}

// todoID extracts the numeric id path variable. The route pattern restricts
// it to digits, so a parse failure here is a programming error surfaced as
// a bad request.
func todoID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

// List handles GET /todos.
func (h *TodoHandlers) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.PrincipalFromContext(r.Context())

	todos, err := h.Service.List(r.Context(), user.ID)
	if err != nil {
		webutil.WriteServiceError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, todos)
}

// Create handles POST /todos.
func (h *TodoHandlers) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.PrincipalFromContext(r.Context())

	var in models.TodoCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		webutil.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	created, err := h.Service.Create(r.Context(), in, user.ID)
	if err != nil {
		webutil.WriteServiceError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, created)
}

// Get handles GET /todos/{id}.
func (h *TodoHandlers) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.PrincipalFromContext(r.Context())

	id, err := todoID(r)
	if err != nil {
		webutil.RespondWithError(w, http.StatusBadRequest, "Invalid todo id")
		return
	}

	todo, err := h.Service.Get(r.Context(), id, user.ID)
	if err != nil {
		webutil.WriteServiceError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, todo)
}

// Update handles PUT /todos/{id} with partial update semantics.
func (h *TodoHandlers) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.PrincipalFromContext(r.Context())

	id, err := todoID(r)
	if err != nil {
		webutil.RespondWithError(w, http.StatusBadRequest, "Invalid todo id")
		return
	}

	var patch models.TodoUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		webutil.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	updated, err := h.Service.Update(r.Context(), id, patch, user.ID)
	if err != nil {
		webutil.WriteServiceError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /todos/{id}.
func (h *TodoHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.PrincipalFromContext(r.Context())

	id, err := todoID(r)
	if err != nil {
		webutil.RespondWithError(w, http.StatusBadRequest, "Invalid todo id")
		return
	}

	if err := h.Service.Delete(r.Context(), id, user.ID); err != nil {
		webutil.WriteServiceError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Todo %d deleted successfully", id),
	})
}
