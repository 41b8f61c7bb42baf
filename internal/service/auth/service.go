package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/staffpay/staffpay-backend-go/internal/domain/auth"
	"github.com/staffpay/staffpay-backend-go/internal/domain/user"
	"github.com/staffpay/staffpay-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	userRepo user.UserRepository
	jwt      jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		jwt:      jwtService,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Same error as a bad password, so usernames cannot be probed.
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	// The admin portal accepts admin and superadmin, the staff portal
	// accepts staff. Valid credentials on the wrong portal are rejected.
	switch req.Portal {
	case auth.PortalAdmin:
		if !u.IsAdmin() {
			return auth.TokenResponse{}, auth.ErrWrongPortal
		}
	case auth.PortalStaff:
		if !u.IsStaff() {
			return auth.TokenResponse{}, auth.ErrWrongPortal
		}
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(u.ID, u.Username, u.Role)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	resp := auth.TokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		UserID:      u.ID,
		Username:    u.Username,
		Role:        string(u.Role),
		PhotoURL:    u.PhotoURL,
	}
	if u.IsStaff() {
		resp.StaffRole = u.StaffRole
	}

	return resp, nil
}
