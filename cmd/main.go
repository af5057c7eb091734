package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/oksasatya/go-todo-api/config"
	"github.com/oksasatya/go-todo-api/internal/container"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
	"github.com/oksasatya/go-todo-api/internal/infrastructure/memory"
	"github.com/oksasatya/go-todo-api/internal/infrastructure/mongodb"
	pginfra "github.com/oksasatya/go-todo-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-todo-api/internal/infrastructure/redisstore"
	"github.com/oksasatya/go-todo-api/internal/interface/middleware"
	"github.com/oksasatya/go-todo-api/internal/router"
	"github.com/oksasatya/go-todo-api/pkg/helpers"
	"github.com/oksasatya/go-todo-api/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	todoRepo, userRepo, cleanup, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("storage init failed: %v", err)
	}
	defer cleanup()
	logger.Infof("storage driver: %s", cfg.StorageDriver)

	// Elasticsearch is optional; without addresses the search endpoint
	// degrades to an empty result set.
	if addrs := cfg.ESAddrs(); len(addrs) > 0 {
		esClient, err := helpers.NewESClient(addrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass)
		if err != nil {
			log.Fatalf("failed to init elasticsearch client: %v", err)
		}
		container.SetES(esClient)
	}

	jwtManager := helpers.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// Provide infra singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetJWT(jwtManager)
	container.SetTodoRepo(todoRepo)
	container.SetUserRepo(userRepo)

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RealIP())
	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	r.Use(cors.New(corsCfg))
	if cfg.HTTPLogEnabled || cfg.Env == "development" {
		r.Use(gin.Logger())
	}

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(http.ErrServerClosed, err) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}

// buildRepositories selects the storage backend once at startup. The returned
// cleanup closes whatever connections the chosen driver opened.
func buildRepositories(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (repository.TodoRepository, repository.UserRepository, func(), error) {
	noop := func() {}

	switch cfg.StorageDriver {
	case config.DriverMemory:
		return memory.NewTodoRepository(), memory.NewUserRepository(), noop, nil

	case config.DriverMongo:
		db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDBName)
		if err != nil {
			return nil, nil, noop, fmt.Errorf("connect to mongodb: %w", err)
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			return nil, nil, noop, fmt.Errorf("ensure mongodb indexes: %w", err)
		}
		cleanup := func() { _ = db.Client().Disconnect(context.Background()) }
		return mongodb.NewTodoRepository(db), mongodb.NewUserRepository(db), cleanup, nil

	case config.DriverPostgres:
		pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
		if err != nil {
			return nil, nil, noop, fmt.Errorf("connect to postgres: %w", err)
		}
		if err := runMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
			pool.Close()
			return nil, nil, noop, fmt.Errorf("migrations: %w", err)
		}
		return pginfra.NewTodoRepository(pool), pginfra.NewUserRepository(pool), pool.Close, nil

	case config.DriverRedis:
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, noop, fmt.Errorf("connect to redis: %w", err)
		}
		cleanup := func() { _ = rdb.Close() }
		return redisstore.NewTodoRepository(rdb), redisstore.NewUserRepository(rdb), cleanup, nil

	default:
		return nil, nil, noop, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func runMigrations(dsn string, migrationsDir string, logger *logrus.Logger) error {
	// Open sql DB via pgx stdlib
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsDir), "postgres", driver)
	if err != nil {
		return err
	}
	logger.Info("running migrations...")
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migrations to run")
		return nil
	}
	return err
}
