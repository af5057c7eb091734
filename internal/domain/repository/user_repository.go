package repository

import (
	"context"

	"github.com/oksasatya/go-todo-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// Create assigns the id and timestamps on the passed entity and returns
// domain.ErrEmailTaken when the email is already registered. The Get methods
// return domain.ErrNotFound for unknown users.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
