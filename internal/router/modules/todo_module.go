package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-todo-api/internal/application"
	handlers "github.com/oksasatya/go-todo-api/internal/interface/http"
	"github.com/oksasatya/go-todo-api/internal/interface/middleware"
)

// TodoModule wires the todo handlers behind the auth gate.
// All routes require a bearer token:
//
//	GET    /todos
//	POST   /todos
//	PUT    /todos
//	DELETE /todos?id=
//	GET    /todos/search?q=
type TodoModule struct {
	Handler *handlers.TodoHandler
	Auth    *application.AuthService
}

func NewTodoModule(h *handlers.TodoHandler, auth *application.AuthService) *TodoModule {
	return &TodoModule{Handler: h, Auth: auth}
}

func (m *TodoModule) Register(rg *gin.RouterGroup) {
	todos := rg.Group("/todos")
	todos.Use(middleware.RequireAuth(m.Auth))
	{
		todos.GET("", m.Handler.List)
		todos.POST("", m.Handler.Create)
		todos.PUT("", m.Handler.Update)
		todos.DELETE("", m.Handler.Delete)
		todos.GET("/search", m.Handler.Search)
	}
}
