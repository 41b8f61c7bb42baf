package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffpay/staffpay-backend-go/internal/domain/auth"
)

// currentUserID pulls the authenticated user's id out of the verified
// token claims.
func currentUserID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return "", auth.ErrInvalidToken
	}

	return id, nil
}
