package webutil

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"todo-api/models"
)

// RespondWithJSON writes a JSON payload with the given status code.
func RespondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("ERROR: Failed to marshal JSON response: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal Server Error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

// RespondWithError writes a single-sentence error body.
func RespondWithError(w http.ResponseWriter, status int, message string) {
	RespondWithJSON(w, status, map[string]string{"error": message})
}

// WriteServiceError is the single place where service errors become HTTP
// status codes. Everything unrecognized is a 500 with a generic body; the
// underlying error is logged, never echoed.
func WriteServiceError(w http.ResponseWriter, err error) {
	var notFound *models.NotFoundError
	var validation *models.ValidationError
	var constraint *models.ConstraintError
	var conflict *models.ConflictError

	switch {
	case errors.Is(err, models.ErrNotAuthenticated):
		w.Header().Set("WWW-Authenticate", "Bearer")
		RespondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, models.ErrInvalidCredentials), errors.Is(err, models.ErrInvalidToken):
		w.Header().Set("WWW-Authenticate", "Bearer")
		RespondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, models.ErrInactiveUser):
		RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &notFound):
		RespondWithError(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &validation):
		RespondWithError(w, http.StatusUnprocessableEntity, validation.Error())
	case errors.As(err, &constraint):
		RespondWithError(w, http.StatusBadRequest, constraint.Error())
	case errors.As(err, &conflict):
		RespondWithError(w, http.StatusConflict, conflict.Error())
	default:
		log.Printf("ERROR: %v", err)
		RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
