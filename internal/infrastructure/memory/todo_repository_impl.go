package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oksasatya/go-todo-api/internal/domain"
	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
)

// TodoRepository is the volatile storage backend. Records live in process
// memory and are lost on restart. Ids combine the current unix-millisecond
// time with an increasing counter; they are unique for the process lifetime
// but carry no ordering guarantee.
type TodoRepository struct {
	mu      sync.RWMutex
	todos   map[string]entity.Todo
	counter uint64
}

func NewTodoRepository() *TodoRepository {
	return &TodoRepository{todos: make(map[string]entity.Todo)}
}

func (r *TodoRepository) FindAll(_ context.Context, ownerID string) ([]entity.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Todo, 0)
	for _, t := range r.todos {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *TodoRepository) FindByID(_ context.Context, id, ownerID string) (*entity.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.todos[id]
	if !ok || t.OwnerID != ownerID {
		return nil, nil
	}
	return &t, nil
}

func (r *TodoRepository) Create(_ context.Context, text string, completed bool, ownerID string) (*entity.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counter++
	t := entity.Todo{
		ID:        fmt.Sprintf("%d-%d", time.Now().UnixMilli(), r.counter),
		Text:      text,
		Completed: completed,
		CreatedAt: time.Now().UTC(),
		OwnerID:   ownerID,
	}
	r.todos[t.ID] = t
	return &t, nil
}

func (r *TodoRepository) Update(_ context.Context, id string, upd repository.TodoUpdate, ownerID string) (*entity.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.todos[id]
	if !ok || t.OwnerID != ownerID {
		return nil, fmt.Errorf("update todo %s: %w", id, domain.ErrNotFound)
	}
	if upd.Text != nil {
		t.Text = *upd.Text
	}
	if upd.Completed != nil {
		t.Completed = *upd.Completed
	}
	r.todos[id] = t
	return &t, nil
}

func (r *TodoRepository) Delete(_ context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.todos[id]
	if !ok || t.OwnerID != ownerID {
		return fmt.Errorf("delete todo %s: %w", id, domain.ErrNotFound)
	}
	delete(r.todos, id)
	return nil
}

var _ repository.TodoRepository = (*TodoRepository)(nil)
