package auth

import "errors"

var (
	// ErrTokenInvalid is returned for malformed tokens, bad signatures, or
	// unexpected signing methods.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired is returned once the validity window has elapsed.
	ErrTokenExpired = errors.New("token expired")

	// ErrUnknownUser is returned when login names a userName that does not
	// exist.
	ErrUnknownUser = errors.New("user name not exist")

	// ErrWrongPassword is returned when the userName exists but the
	// password does not match.
	ErrWrongPassword = errors.New("wrong password")

	// ErrUserNameTaken is returned when registration names an occupied
	// userName.
	ErrUserNameTaken = errors.New("user name already exist")

	// ErrNoSession is returned by logout when no token was presented.
	ErrNoSession = errors.New("no session")
)
