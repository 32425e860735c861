package services

import (
	"context"
	"errors"

	"github.com/verseworks/poem-service/internal/auth"
	"github.com/verseworks/poem-service/internal/model"
	"github.com/verseworks/poem-service/internal/store"
)

// SessionService implements the authentication state machine. Sessions are
// stateless: every request derives its state fresh from the presented
// token, nothing is stored server-side.
type SessionService struct {
	store  store.Store
	tokens *auth.TokenManager
}

func NewSessionService(s store.Store, tm *auth.TokenManager) *SessionService {
	return &SessionService{store: s, tokens: tm}
}

// Login authenticates by exact-match comparison of the stored password and
// issues a session token. Unknown userName and wrong password are distinct
// failures.
func (s *SessionService) Login(ctx context.Context, userName, password string) (string, string, error) {
	user, err := s.store.Users().GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", "", auth.ErrUnknownUser
		}
		return "", "", err
	}
	if user.Password != password {
		return "", "", auth.ErrWrongPassword
	}
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", "", err
	}
	return user.UserName, token, nil
}

// Register appends a new user and issues a token exactly as Login does.
// An occupied userName fails with ErrUserNameTaken and leaves the users
// collection unchanged.
func (s *SessionService) Register(ctx context.Context, userName, password string) (string, string, error) {
	user, err := s.store.Users().Append(ctx, &model.User{UserName: userName, Password: password})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return "", "", auth.ErrUserNameTaken
		}
		return "", "", err
	}
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", "", err
	}
	return user.UserName, token, nil
}

// Identify verifies the token and resolves its subject to a userName. Any
// verification failure means the caller must treat the session as gone and
// discard the token.
func (s *SessionService) Identify(ctx context.Context, token string) (string, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return "", err
	}
	user, err := s.store.Users().GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.UserName, nil
}

// Logout succeeds only if a token was presented; absence is ErrNoSession,
// not a no-op success. The token itself is not inspected, since discarding
// it is all a stateless session needs.
func (s *SessionService) Logout(_ context.Context, token string) error {
	if token == "" {
		return auth.ErrNoSession
	}
	return nil
}

// ListUsers returns every user record in insertion order.
func (s *SessionService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.store.Users().List(ctx)
}

// GetUser returns a user by id.
func (s *SessionService) GetUser(ctx context.Context, id int) (*model.User, error) {
	return s.store.Users().GetByID(ctx, id)
}
