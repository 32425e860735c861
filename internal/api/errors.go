package api

import (
	"errors"
	"net/http"

	"github.com/verseworks/poem-service/internal/api/respond"
	"github.com/verseworks/poem-service/internal/auth"
	"github.com/verseworks/poem-service/internal/model"
)

// writeServiceError maps every expected failure kind to a status code and a
// stable kind string. Anything outside the taxonomy is reported as a
// generic 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		respond.WriteError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, model.ErrBrokenReference):
		respond.WriteError(w, http.StatusInternalServerError, "broken_reference", err.Error())
	case errors.Is(err, model.ErrConflict):
		respond.WriteError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, auth.ErrUserNameTaken):
		respond.WriteError(w, http.StatusConflict, "user_name_taken", err.Error())
	case errors.Is(err, auth.ErrUnknownUser):
		respond.WriteError(w, http.StatusUnauthorized, "unknown_user", err.Error())
	case errors.Is(err, auth.ErrWrongPassword):
		respond.WriteError(w, http.StatusUnauthorized, "wrong_password", err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		respond.WriteError(w, http.StatusUnauthorized, "token_expired", err.Error())
	case errors.Is(err, auth.ErrTokenInvalid):
		respond.WriteError(w, http.StatusUnauthorized, "invalid_token", err.Error())
	case errors.Is(err, auth.ErrNoSession):
		respond.WriteError(w, http.StatusUnauthorized, "no_session", err.Error())
	default:
		respond.WriteInternalError(w, err.Error())
	}
}
