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

type TodoHandler struct {
	Svc    *application.TodoService
	Logger *logrus.Logger
}

func NewTodoHandler(svc *application.TodoService, logger *logrus.Logger) *TodoHandler {
	return &TodoHandler{Svc: svc, Logger: logger}
}

type createTodoRequest struct {
	Text string `json:"text"`
}

type updateTodoRequest struct {
	ID        string  `json:"id"`
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// List GET /todos
func (h *TodoHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	todos, err := h.Svc.GetAllTodos(c.Request.Context(), uid)
	if err != nil {
		response.DomainError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"todos": todos})
}

// Create POST /todos
func (h *TodoHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	todo, err := h.Svc.CreateTodo(c.Request.Context(), req.Text, uid)
	if err != nil {
		response.DomainError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{"todo": todo})
}

// Update PUT /todos
func (h *TodoHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	todo, err := h.Svc.UpdateTodo(c.Request.Context(), application.UpdateTodoInput{
		ID:        req.ID,
		Text:      req.Text,
		Completed: req.Completed,
	}, uid)
	if err != nil {
		response.DomainError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"todo": todo})
}

// Delete DELETE /todos?id=
func (h *TodoHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	if err := h.Svc.DeleteTodo(c.Request.Context(), c.Query("id"), uid); err != nil {
		response.DomainError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "todo deleted successfully"})
}

// Search GET /todos/search?q=
func (h *TodoHandler) Search(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, "query is required")
		return
	}

	hits, err := h.Svc.SearchTodos(c.Request.Context(), q, uid, 10)
	if err != nil {
		response.DomainError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"todos": hits})
}
