package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleStaff      Role = "staff"      // Regular staff member, paid through settlements
	RoleAdmin      Role = "admin"      // Runs payroll, manages staff
	RoleSuperAdmin Role = "superadmin" // Admin plus destructive operations
)

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	StaffRole    *string          // job label, staff accounts only
	BaseSalary   *decimal.Decimal // staff accounts only
	PhotoURL     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsStaff checks if the account is a payable staff account
func (u *User) IsStaff() bool {
	return u.Role == RoleStaff
}

// IsAdmin checks if the account has admin privileges
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}

// IsSuperAdmin checks if the account has superadmin privileges
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// Salary returns the account's base salary, zero for non-staff accounts.
func (u *User) Salary() decimal.Decimal {
	if u.BaseSalary == nil {
		return decimal.Zero
	}
	return *u.BaseSalary
}
