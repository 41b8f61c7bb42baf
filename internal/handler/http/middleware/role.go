package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffpay/staffpay-backend-go/internal/domain/user"
	"github.com/staffpay/staffpay-backend-go/internal/handler/http/response"
)

// AdminOnly requires admin or superadmin role
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		role := user.Role(roleStr)
		if role != user.RoleAdmin && role != user.RoleSuperAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SuperAdminOnly requires superadmin role
func SuperAdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrSuperAdminPrivilegeRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrSuperAdminPrivilegeRequired)
			return
		}

		if user.Role(roleStr) != user.RoleSuperAdmin {
			response.HandleError(w, user.ErrSuperAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// StaffOnly requires staff role
func StaffOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrForbidden)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok || user.Role(roleStr) != user.RoleStaff {
			response.HandleError(w, user.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
