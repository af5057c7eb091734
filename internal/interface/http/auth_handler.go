package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-todo-api/internal/application"
	"github.com/oksasatya/go-todo-api/internal/interface/middleware"
	"github.com/oksasatya/go-todo-api/pkg/response"
	"github.com/oksasatya/go-todo-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	user, token, err := h.Svc.Signup(c.Request.Context(), application.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		response.DomainError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{"user": user, "token": token})
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	user, token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.DomainError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"user": user, "token": token})
}

// Me GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.UserFromContext(c)
	if user == nil {
		response.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"user": user})
}
