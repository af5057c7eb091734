package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-todo-api/config"
	"github.com/oksasatya/go-todo-api/internal/domain"
	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
	"github.com/oksasatya/go-todo-api/internal/infrastructure/mongodb"
	pginfra "github.com/oksasatya/go-todo-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-todo-api/internal/infrastructure/redisstore"
	"github.com/oksasatya/go-todo-api/pkg/helpers"
)

// Seeds the default demo account against the configured storage backend.
// The memory driver is skipped on purpose: its contents die with the
// process, so seeding it from a separate binary is pointless.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	users, cleanup, err := buildUserRepository(ctx, cfg)
	if err != nil {
		log.Fatalf("storage init failed: %v", err)
	}
	defer cleanup()

	email := "test@test.com"
	password := "test"
	name := "Test User"

	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	u := &entity.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Provider:     entity.ProviderCredentials,
	}
	if err := users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			fmt.Printf("user %s already exists, nothing to do\n", email)
			return
		}
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", u.ID, email, password)
}

func buildUserRepository(ctx context.Context, cfg *config.Config) (repository.UserRepository, func(), error) {
	noop := func() {}

	switch cfg.StorageDriver {
	case config.DriverMongo:
		db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDBName)
		if err != nil {
			return nil, noop, err
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			return nil, noop, err
		}
		cleanup := func() { _ = db.Client().Disconnect(context.Background()) }
		return mongodb.NewUserRepository(db), cleanup, nil

	case config.DriverPostgres:
		pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
		if err != nil {
			return nil, noop, err
		}
		return pginfra.NewUserRepository(pool), pool.Close, nil

	case config.DriverRedis:
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, noop, err
		}
		return redisstore.NewUserRepository(rdb), func() { _ = rdb.Close() }, nil

	default:
		return nil, noop, fmt.Errorf("storage driver %q cannot be seeded", cfg.StorageDriver)
	}
}
