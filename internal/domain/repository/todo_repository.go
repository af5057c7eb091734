package repository

import (
	"context"

	"github.com/oksasatya/go-todo-api/internal/domain/entity"
)

// TodoUpdate carries the fields of a partial update. Nil means "leave
// unchanged"; only supplied fields are written.
type TodoUpdate struct {
	Text      *string
	Completed *bool
}

// TodoRepository defines the storage contract for todos. Every operation is
// scoped by the owning user's id: records belonging to other users are
// invisible, and a mismatched owner reads the same as a missing record.
//
// Implementations return copies; mutating a returned Todo must never affect
// stored state. FindByID reports absence as (nil, nil); Update and Delete
// report it as domain.ErrNotFound.
type TodoRepository interface {
	FindAll(ctx context.Context, ownerID string) ([]entity.Todo, error)
	FindByID(ctx context.Context, id, ownerID string) (*entity.Todo, error)
	Create(ctx context.Context, text string, completed bool, ownerID string) (*entity.Todo, error)
	Update(ctx context.Context, id string, upd TodoUpdate, ownerID string) (*entity.Todo, error)
	Delete(ctx context.Context, id, ownerID string) error
}
