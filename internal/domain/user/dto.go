package user

import (
	"github.com/shopspring/decimal"

	"github.com/staffpay/staffpay-backend-go/internal/pkg/validator"
)

type RegisterUserRequest struct {
	Username   string           `json:"username"`
	Password   string           `json:"password"`
	Role       string           `json:"role"`
	StaffRole  *string          `json:"staff_role,omitempty"`
	BaseSalary *decimal.Decimal `json:"base_salary,omitempty"`

	// Set by the handler after the profile photo upload, never from the body.
	PhotoURL *string `json:"-"`
}

func (r *RegisterUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "must be 3-40 characters of letters, digits, dot, underscore or dash"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 6 characters"})
	}
	switch Role(r.Role) {
	case RoleStaff:
		if r.StaffRole == nil || validator.IsEmpty(*r.StaffRole) {
			errs = append(errs, validator.ValidationError{Field: "staff_role", Message: "is required for staff accounts"})
		}
		if r.BaseSalary == nil {
			errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "is required for staff accounts"})
		} else if r.BaseSalary.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
		}
	case RoleAdmin, RoleSuperAdmin:
		// Admin accounts carry no salary or staff role.
	default:
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be 'staff', 'admin' or 'superadmin'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RaiseSalaryRequest struct {
	EmployeeID string          `json:"-"`
	NewSalary  decimal.Decimal `json:"new_salary"`
}

func (r *RaiseSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.NewSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "new_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID         string           `json:"id"`
	Username   string           `json:"username"`
	Role       string           `json:"role"`
	StaffRole  *string          `json:"staff_role,omitempty"`
	BaseSalary *decimal.Decimal `json:"base_salary,omitempty"`
	PhotoURL   *string          `json:"photo_url,omitempty"`
	CreatedAt  string           `json:"created_at"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Role:       string(u.Role),
		StaffRole:  u.StaffRole,
		BaseSalary: u.BaseSalary,
		PhotoURL:   u.PhotoURL,
		CreatedAt:  u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
