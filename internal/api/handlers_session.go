package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/verseworks/poem-service/internal/api/respond"
	"github.com/verseworks/poem-service/internal/auth"
	"github.com/verseworks/poem-service/internal/services"
)

// AuthCookie is the cookie carrying the session token.
const AuthCookie = "AUTH_COOKIE"

// SessionHandler is the HTTP transport for the session state machine. It
// owns cookie mechanics; the service never sees a cookie.
type SessionHandler struct {
	svc       *services.SessionService
	cookieTTL time.Duration
}

func NewSessionHandler(svc *services.SessionService, cookieTTL time.Duration) *SessionHandler {
	return &SessionHandler{svc: svc, cookieTTL: cookieTTL}
}

type credentialsRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// Login POST /login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	userName, token, err := h.svc.Login(r.Context(), req.UserName, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.setSessionCookie(w, token)
	respond.WriteJSON(w, http.StatusOK, userName)
}

// Register POST /registration
func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	userName, token, err := h.svc.Register(r.Context(), req.UserName, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.setSessionCookie(w, token)
	respond.WriteJSON(w, http.StatusOK, userName)
}

// Me GET /me
//
// Any verification failure clears the cookie so the client is not left
// presenting a dead token.
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(AuthCookie)
	if err != nil {
		h.clearSessionCookie(w)
		writeServiceError(w, auth.ErrTokenInvalid)
		return
	}
	userName, err := h.svc.Identify(r.Context(), cookie.Value)
	if err != nil {
		h.clearSessionCookie(w)
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, userName)
}

// Logout GET /logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var token string
	if cookie, err := r.Cookie(AuthCookie); err == nil {
		token = cookie.Value
	}
	if err := h.svc.Logout(r.Context(), token); err != nil {
		writeServiceError(w, err)
		return
	}
	h.clearSessionCookie(w)
	respond.WriteJSON(w, http.StatusOK, "User Logged Out")
}

// ListUsers GET /users
func (h *SessionHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, users)
}

// GetUser GET /users/{id}
func (h *SessionHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.WriteBadRequest(w, "invalid user id")
		return
	}
	user, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, user)
}

func (h *SessionHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.cookieTTL / time.Second),
	})
}

func (h *SessionHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
