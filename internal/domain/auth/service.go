package auth

import "context"

type AuthService interface {
	// Login checks credentials and the portal's role gate, then issues an
	// access token carrying user_id and role claims.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
}
