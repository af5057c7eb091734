package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-todo-api/internal/domain"
	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	repo "github.com/oksasatya/go-todo-api/internal/domain/repository"
)

// TodoService validates and normalizes input before delegating to the
// repository. It is storage-agnostic: the same rules apply to every driver.
// The Elasticsearch client is optional; when nil, indexing and search are
// disabled without error.
type TodoService struct {
	Repo         repo.TodoRepository
	Logger       *logrus.Logger
	ES           *elasticsearch.Client
	ESTodosIndex string
}

func NewTodoService(r repo.TodoRepository, logger *logrus.Logger, es *elasticsearch.Client, esTodosIndex string) *TodoService {
	return &TodoService{Repo: r, Logger: logger, ES: es, ESTodosIndex: esTodosIndex}
}

// UpdateTodoInput carries a partial update; nil fields are left unchanged.
type UpdateTodoInput struct {
	ID        string
	Text      *string
	Completed *bool
}

func (s *TodoService) GetAllTodos(ctx context.Context, ownerID string) ([]entity.Todo, error) {
	return s.Repo.FindAll(ctx, ownerID)
}

// GetTodoByID returns (nil, nil) when no todo matches the id and owner.
func (s *TodoService) GetTodoByID(ctx context.Context, id, ownerID string) (*entity.Todo, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: todo id is required", domain.ErrInvalidInput)
	}
	return s.Repo.FindByID(ctx, id, ownerID)
}

func (s *TodoService) CreateTodo(ctx context.Context, text, ownerID string) (*entity.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: todo text is required", domain.ErrInvalidInput)
	}

	t, err := s.Repo.Create(ctx, text, false, ownerID)
	if err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	s.indexTodo(ctx, t)
	return t, nil
}

func (s *TodoService) UpdateTodo(ctx context.Context, in UpdateTodoInput, ownerID string) (*entity.Todo, error) {
	if in.ID == "" {
		return nil, fmt.Errorf("%w: todo id is required", domain.ErrInvalidInput)
	}

	// Existence pre-check keeps the error uniform across drivers, which
	// would each refuse the write on their own terms.
	existing, err := s.Repo.FindByID(ctx, in.ID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("find todo: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("todo %w", domain.ErrNotFound)
	}

	upd := repo.TodoUpdate{Completed: in.Completed}
	if in.Text != nil {
		text := strings.TrimSpace(*in.Text)
		if text == "" {
			return nil, fmt.Errorf("%w: todo text must be a non-empty string", domain.ErrInvalidInput)
		}
		upd.Text = &text
	}

	t, err := s.Repo.Update(ctx, in.ID, upd, ownerID)
	if err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}
	s.indexTodo(ctx, t)
	return t, nil
}

func (s *TodoService) DeleteTodo(ctx context.Context, id, ownerID string) error {
	if id == "" {
		return fmt.Errorf("%w: todo id is required", domain.ErrInvalidInput)
	}

	existing, err := s.Repo.FindByID(ctx, id, ownerID)
	if err != nil {
		return fmt.Errorf("find todo: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("todo %w", domain.ErrNotFound)
	}

	if err := s.Repo.Delete(ctx, id, ownerID); err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	s.deleteTodoIndex(ctx, id)
	return nil
}

func (s *TodoService) indexTodo(ctx context.Context, t *entity.Todo) {
	if s.ES == nil || s.ESTodosIndex == "" {
		return
	}
	doc := map[string]any{
		"id":         t.ID,
		"userId":     t.OwnerID,
		"text":       t.Text,
		"completed":  t.Completed,
		"created_at": t.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESTodosIndex, DocumentID: t.ID, Body: strings.NewReader(string(b)), Refresh: "false"}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("todo_id", t.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("todo_id", t.ID).Warn("es index response error")
	}
}

func (s *TodoService) deleteTodoIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESTodosIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESTodosIndex, DocumentID: id}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("todo_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// SearchTodos runs a match query over the owner's indexed todos. Returns an
// empty result when no Elasticsearch client is configured.
func (s *TodoService) SearchTodos(ctx context.Context, q, ownerID string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESTodosIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must":   map[string]any{"match": map[string]any{"text": q}},
				"filter": map[string]any{"term": map[string]any{"userId": ownerID}},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESTodosIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
