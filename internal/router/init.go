package router

import (
	"github.com/oksasatya/go-todo-api/internal/application"
	"github.com/oksasatya/go-todo-api/internal/container"
	handlers "github.com/oksasatya/go-todo-api/internal/interface/http"
	"github.com/oksasatya/go-todo-api/internal/router/modules"
)

// InitModules builds the services from the container singletons and
// registers every feature module with the router registry. Called once
// during application startup.
func InitModules(r *Registry) {
	logger := container.GetLogger()

	authSvc := application.NewAuthService(container.GetUserRepo(), container.GetJWT(), logger)
	todoSvc := application.NewTodoService(
		container.GetTodoRepo(),
		logger,
		container.GetES(),
		container.GetConfig().ESTodosIndex,
	)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), authSvc))
	r.Add(modules.NewTodoModule(handlers.NewTodoHandler(todoSvc, logger), authSvc))
}
