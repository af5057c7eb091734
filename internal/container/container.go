package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-todo-api/config"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
	"github.com/oksasatya/go-todo-api/pkg/helpers"
)

// app-level container to share constructed components across packages.
// The composition root selects the storage driver once at startup and
// publishes the resulting repositories here; the router auto-wires its
// modules from these singletons.

var (
	cfg    *config.Config
	logger *logrus.Logger

	jwtManager *helpers.JWTManager

	todoRepo repository.TodoRepository
	userRepo repository.UserRepository

	esClient *elasticsearch.Client
)

func SetConfig(c *config.Config)   { cfg = c }
func GetConfig() *config.Config    { return cfg }
func SetLogger(l *logrus.Logger)   { logger = l }
func GetLogger() *logrus.Logger    { return logger }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager {
	if jwtManager != nil {
		return jwtManager
	}
	return helpers.DefaultJWT()
}

func SetTodoRepo(r repository.TodoRepository) { todoRepo = r }
func GetTodoRepo() repository.TodoRepository  { return todoRepo }
func SetUserRepo(r repository.UserRepository) { userRepo = r }
func GetUserRepo() repository.UserRepository  { return userRepo }

func SetES(c *elasticsearch.Client) { esClient = c }
func GetES() *elasticsearch.Client  { return esClient }
