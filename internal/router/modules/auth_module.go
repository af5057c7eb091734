package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-todo-api/internal/application"
	handlers "github.com/oksasatya/go-todo-api/internal/interface/http"
	"github.com/oksasatya/go-todo-api/internal/interface/middleware"
)

// AuthModule registers the credential endpoints.
// Public: POST /auth/signup, POST /auth/login
// Protected: GET /auth/me
type AuthModule struct {
	Handler *handlers.AuthHandler
	Auth    *application.AuthService
}

func NewAuthModule(h *handlers.AuthHandler, auth *application.AuthService) *AuthModule {
	return &AuthModule{Handler: h, Auth: auth}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/signup", m.Handler.Signup)
	rg.POST("/auth/login", m.Handler.Login)

	protected := rg.Group("/auth")
	protected.Use(middleware.RequireAuth(m.Auth))
	{
		protected.GET("/me", m.Handler.Me)
	}
}
