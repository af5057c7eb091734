package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-todo-api/internal/domain"
	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
)

// TodoRepository is the relational storage backend. Rows are keyed by UUID
// and carry the owner id; a string that is not a UUID is reported as
// absence, matching the contract of the other drivers.
type TodoRepository struct {
	pool *pgxpool.Pool
}

func NewTodoRepository(pool *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{pool: pool}
}

func (r *TodoRepository) FindAll(ctx context.Context, ownerID string) ([]entity.Todo, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, text, completed, created_at, user_id
		FROM todos
		WHERE user_id = $1
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Todo, 0)
	for rows.Next() {
		var t entity.Todo
		if err := rows.Scan(&t.ID, &t.Text, &t.Completed, &t.CreatedAt, &t.OwnerID); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TodoRepository) FindByID(ctx context.Context, id, ownerID string) (*entity.Todo, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	t := &entity.Todo{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, text, completed, created_at, user_id
		FROM todos
		WHERE id = $1 AND user_id = $2
	`, id, ownerID)

	if err := row.Scan(&t.ID, &t.Text, &t.Completed, &t.CreatedAt, &t.OwnerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func (r *TodoRepository) Create(ctx context.Context, text string, completed bool, ownerID string) (*entity.Todo, error) {
	t := &entity.Todo{Text: text, Completed: completed, OwnerID: ownerID}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO todos (text, completed, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, text, completed, ownerID)

	if err := row.Scan(&t.ID, &t.CreatedAt); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TodoRepository) Update(ctx context.Context, id string, upd repository.TodoUpdate, ownerID string) (*entity.Todo, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("update todo %s: %w", id, domain.ErrNotFound)
	}

	t := &entity.Todo{}
	row := r.pool.QueryRow(ctx, `
		UPDATE todos
		SET text = COALESCE($1, text),
		    completed = COALESCE($2, completed),
		    updated_at = now()
		WHERE id = $3 AND user_id = $4
		RETURNING id, text, completed, created_at, user_id
	`, upd.Text, upd.Completed, id, ownerID)

	if err := row.Scan(&t.ID, &t.Text, &t.Completed, &t.CreatedAt, &t.OwnerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("update todo %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (r *TodoRepository) Delete(ctx context.Context, id, ownerID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("delete todo %s: %w", id, domain.ErrNotFound)
	}

	res, err := r.pool.Exec(ctx, `
		DELETE FROM todos
		WHERE id = $1 AND user_id = $2
	`, id, ownerID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("delete todo %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

var _ repository.TodoRepository = (*TodoRepository)(nil)
