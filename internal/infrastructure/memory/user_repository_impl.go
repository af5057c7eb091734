package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oksasatya/go-todo-api/internal/domain"
	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
)

// UserRepository is the volatile user store backing the memory driver.
// Email uniqueness is enforced at creation, case-insensitively.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]entity.User
	byEmail map[string]string
	counter uint64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]entity.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(u.Email)
	if _, exists := r.byEmail[key]; exists {
		return domain.ErrEmailTaken
	}

	r.counter++
	now := time.Now().UTC()
	u.ID = fmt.Sprintf("%d-%d", now.UnixMilli(), r.counter)
	u.CreatedAt = now
	u.UpdatedAt = now

	r.byID[u.ID] = *u
	r.byEmail[key] = u.ID
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u := r.byID[id]
	return &u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
