package user

import "errors"

var (
	ErrUserNotFound                = errors.New("user not found")
	ErrUsernameExists              = errors.New("username already taken")
	ErrNotStaff                    = errors.New("account is not a staff account")
	ErrCannotDeleteSuperAdmin      = errors.New("cannot delete superadmin account")
	ErrAdminPrivilegeRequired      = errors.New("admin privilege required")
	ErrSuperAdminPrivilegeRequired = errors.New("superadmin privilege required")
	ErrForbidden                   = errors.New("not allowed to access this resource")
)
