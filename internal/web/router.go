package web

import (
	"net/http"

	"todo-api/internal/auth"
	"todo-api/internal/todo"
	"todo-api/internal/user"
	"todo-api/internal/webutil"
	"todo-api/middleware"

	"github.com/gorilla/mux"
)

// SetupRoutes builds the route table. Everything under /todos plus /auth/me
// sits behind the bearer-token middleware; registration and login do not.
func SetupRoutes(
	authHandlers *auth.AuthHandlers,
	userHandlers *user.UserHandlers,
	todoHandlers *todo.TodoHandlers,
	mw *middleware.Middleware,
) *mux.Router {
	r := mux.NewRouter()

	// Authentication
	r.HandleFunc("/auth/token", authHandlers.Token).Methods("POST")
	r.HandleFunc("/auth/me", mw.RequireAuth(authHandlers.Me)).Methods("GET")

	// Registration
	r.HandleFunc("/users", userHandlers.Create).Methods("POST")

	// Todos, scoped to the authenticated principal
	r.HandleFunc("/todos", mw.RequireAuth(todoHandlers.List)).Methods("GET")
	r.HandleFunc("/todos", mw.RequireAuth(todoHandlers.Create)).Methods("POST")
	r.HandleFunc("/todos/{id:[0-9]+}", mw.RequireAuth(todoHandlers.Get)).Methods("GET")
	r.HandleFunc("/todos/{id:[0-9]+}", mw.RequireAuth(todoHandlers.Update)).Methods("PUT")
	r.HandleFunc("/todos/{id:[0-9]+}", mw.RequireAuth(todoHandlers.Delete)).Methods("DELETE")

	// Liveness
	r.HandleFunc("/healthz", healthz).Methods("GET")

	// 404 handler
	r.NotFoundHandler = http.HandlerFunc(notFound)

	return r
}

func healthz(w http.ResponseWriter, r *http.Request) {
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	webutil.RespondWithError(w, http.StatusNotFound, "Resource not found")
}
