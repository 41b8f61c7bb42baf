package auth

import (
	"github.com/staffpay/staffpay-backend-go/internal/pkg/validator"
)

const (
	PortalStaff = "staff"
	PortalAdmin = "admin"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`

	// Portal is the login page used: "staff" accepts staff accounts,
	// "admin" accepts admin and superadmin accounts.
	Portal string `json:"portal"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}
	if r.Portal != PortalStaff && r.Portal != PortalAdmin {
		errs = append(errs, validator.ValidationError{Field: "portal", Message: "must be 'staff' or 'admin'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken string  `json:"access_token"`
	ExpiresAt   int64   `json:"expires_at"`
	UserID      string  `json:"user_id"`
	Username    string  `json:"username"`
	Role        string  `json:"role"`
	StaffRole   *string `json:"staff_role,omitempty"`
	PhotoURL    *string `json:"photo_url,omitempty"`
}
