package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-todo-api/internal/domain"
	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
)

func todosKey(ownerID string) string { return "todos:" + ownerID }

// TodoRepository keeps each user's todos in a Redis hash keyed by owner,
// one JSON-encoded record per field. Owner scoping falls out of the key
// layout; ids are random UUIDs assigned at creation.
type TodoRepository struct {
	rdb *redis.Client
}

func NewTodoRepository(rdb *redis.Client) *TodoRepository {
	return &TodoRepository{rdb: rdb}
}

func (r *TodoRepository) FindAll(ctx context.Context, ownerID string) ([]entity.Todo, error) {
	data, err := r.rdb.HGetAll(ctx, todosKey(ownerID)).Result()
	if err != nil {
		return nil, err
	}

	out := make([]entity.Todo, 0, len(data))
	for _, raw := range data {
		var t entity.Todo
		if err := json.Unmarshal([]byte(raw), &t); err != nil {
			return nil, err
		}
		t.OwnerID = ownerID
		out = append(out, t)
	}
	return out, nil
}

func (r *TodoRepository) FindByID(ctx context.Context, id, ownerID string) (*entity.Todo, error) {
	raw, err := r.rdb.HGet(ctx, todosKey(ownerID), id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var t entity.Todo
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return nil, err
	}
	t.OwnerID = ownerID
	return &t, nil
}

func (r *TodoRepository) Create(ctx context.Context, text string, completed bool, ownerID string) (*entity.Todo, error) {
	t := entity.Todo{
		ID:        uuid.NewString(),
		Text:      text,
		Completed: completed,
		CreatedAt: time.Now().UTC(),
		OwnerID:   ownerID,
	}

	raw, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	if err := r.rdb.HSet(ctx, todosKey(ownerID), t.ID, raw).Err(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TodoRepository) Update(ctx context.Context, id string, upd repository.TodoUpdate, ownerID string) (*entity.Todo, error) {
	t, err := r.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("update todo %s: %w", id, domain.ErrNotFound)
	}

	if upd.Text != nil {
		t.Text = *upd.Text
	}
	if upd.Completed != nil {
		t.Completed = *upd.Completed
	}

	raw, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	if err := r.rdb.HSet(ctx, todosKey(ownerID), id, raw).Err(); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TodoRepository) Delete(ctx context.Context, id, ownerID string) error {
	n, err := r.rdb.HDel(ctx, todosKey(ownerID), id).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("delete todo %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

var _ repository.TodoRepository = (*TodoRepository)(nil)
