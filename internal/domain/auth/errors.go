package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or missing token")
	ErrWrongPortal        = errors.New("invalid role for this login portal")
)
