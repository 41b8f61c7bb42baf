package user

import (
	"context"

	"github.com/shopspring/decimal"
)

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	List(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id string) error

	// UpdateBaseSalary overwrites the base salary of a staff account.
	// Historical payment rows are unaffected; they carry their own copy.
	UpdateBaseSalary(ctx context.Context, id string, newSalary decimal.Decimal) error
}
