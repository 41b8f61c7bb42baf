package response

import (
	"errors"
	"net/http"

	"github.com/staffpay/staffpay-backend-go/internal/domain/advance"
	"github.com/staffpay/staffpay-backend-go/internal/domain/auth"
	"github.com/staffpay/staffpay-backend-go/internal/domain/payment"
	"github.com/staffpay/staffpay-backend-go/internal/domain/user"
	"github.com/staffpay/staffpay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrWrongPortal):
		Forbidden(w, "Account cannot log in through this portal")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrNotStaff):
		BadRequest(w, "User is not a staff member", nil)
	case errors.Is(err, user.ErrCannotDeleteSuperAdmin):
		Forbidden(w, "Superadmin accounts cannot be deleted")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrSuperAdminPrivilegeRequired):
		Forbidden(w, "Superadmin privilege required")
	case errors.Is(err, user.ErrForbidden):
		Forbidden(w, "Access denied")

	// Advance domain errors
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance request not found")
	case errors.Is(err, advance.ErrAdvanceAlreadyDecided):
		Conflict(w, "Advance request already decided")
	case errors.Is(err, advance.ErrAdvanceOutstanding):
		Conflict(w, "An advance request is still outstanding")

	// Payment domain errors
	case errors.Is(err, payment.ErrAlreadySettled):
		Conflict(w, "Salary already settled for this period")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
