package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-todo-api/internal/application"
	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/pkg/response"
)

const (
	CtxUserIDKey = "userID"
	CtxUserKey   = "user"
)

// RequireAuth verifies the Authorization bearer token on every request and
// injects the resolved user (password stripped) into the Gin context. There
// is no server-side session: each request is re-verified against the token's
// signature and expiry and re-resolved against the user store.
func RequireAuth(auth *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			response.DomainError(c, auth.Logger, err)
			c.Abort()
			return
		}

		c.Set(CtxUserIDKey, user.ID)
		c.Set(CtxUserKey, user)
		c.Next()
	}
}

// UserFromContext returns the authenticated user set by RequireAuth, or nil.
func UserFromContext(c *gin.Context) *entity.User {
	u, _ := c.Get(CtxUserKey)
	user, _ := u.(*entity.User)
	return user
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
