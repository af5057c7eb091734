package redisstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-todo-api/internal/domain"
	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
	"github.com/oksasatya/go-todo-api/pkg/helpers"
)

func userKey(id string) string     { return "user:id:" + id }
func emailKey(email string) string { return "user:email:" + strings.ToLower(email) }

// userRecord is the persisted shape; unlike the entity it serializes the
// password hash.
type userRecord struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password,omitempty"`
	Name         string    `json:"name"`
	Provider     string    `json:"provider"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (rec userRecord) toEntity() entity.User {
	return entity.User(rec)
}

// UserRepository stores users as JSON values keyed by id, with a separate
// email key claimed via SETNX to enforce email uniqueness.
type UserRepository struct {
	rdb *redis.Client
}

func NewUserRepository(rdb *redis.Client) *UserRepository {
	return &UserRepository{rdb: rdb}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	id := uuid.NewString()

	claimed, err := r.rdb.SetNX(ctx, emailKey(u.Email), id, 0).Result()
	if err != nil {
		return err
	}
	if !claimed {
		return domain.ErrEmailTaken
	}

	now := time.Now().UTC()
	rec := userRecord{
		ID:           id,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Provider:     u.Provider,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := helpers.RedisSetJSON(ctx, r.rdb, userKey(id), rec, 0); err != nil {
		// Release the email claim so a retry is possible.
		_ = r.rdb.Del(ctx, emailKey(u.Email)).Err()
		return err
	}

	u.ID = id
	u.CreatedAt = now
	u.UpdatedAt = now
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var rec userRecord
	found, err := helpers.RedisGetJSON(ctx, r.rdb, userKey(id), &rec)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	u := rec.toEntity()
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	id, err := r.rdb.Get(ctx, emailKey(email)).Result()
	if err == redis.Nil {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user %s by email: %w", id, err)
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
