package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/oksasatya/go-todo-api/internal/application"
	"github.com/oksasatya/go-todo-api/internal/domain"
	"github.com/oksasatya/go-todo-api/internal/infrastructure/memory"
)

func newTodoService() *application.TodoService {
	return application.NewTodoService(memory.NewTodoRepository(), nil, nil, "")
}

func TestTodoService_CreateTodo_TrimsText(t *testing.T) {
	svc := newTodoService()

	todo, err := svc.CreateTodo(context.Background(), "  Buy milk  ", "u1")
	if err != nil {
		t.Fatalf("CreateTodo: %v", err)
	}
	if todo.Text != "Buy milk" {
		t.Fatalf("Text = %q, want %q", todo.Text, "Buy milk")
	}
	if todo.Completed {
		t.Fatal("expected new todo to start incomplete")
	}
}

func TestTodoService_CreateTodo_RejectsEmptyText(t *testing.T) {
	svc := newTodoService()

	for _, text := range []string{"", "   ", "\t\n"} {
		if _, err := svc.CreateTodo(context.Background(), text, "u1"); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("CreateTodo(%q) = %v, want ErrInvalidInput", text, err)
		}
	}
}

func TestTodoService_UpdateTodo_Partial(t *testing.T) {
	svc := newTodoService()
	ctx := context.Background()

	created, err := svc.CreateTodo(ctx, "original", "u1")
	if err != nil {
		t.Fatalf("CreateTodo: %v", err)
	}

	text := "  renamed  "
	got, err := svc.UpdateTodo(ctx, application.UpdateTodoInput{ID: created.ID, Text: &text}, "u1")
	if err != nil {
		t.Fatalf("UpdateTodo: %v", err)
	}
	if got.Text != "renamed" {
		t.Fatalf("Text = %q, want %q", got.Text, "renamed")
	}
	if got.Completed {
		t.Fatal("Completed flipped without being set")
	}

	done := true
	got, err = svc.UpdateTodo(ctx, application.UpdateTodoInput{ID: created.ID, Completed: &done}, "u1")
	if err != nil {
		t.Fatalf("UpdateTodo: %v", err)
	}
	if !got.Completed {
		t.Fatal("expected Completed to be true")
	}
	if got.Text != "renamed" {
		t.Fatalf("Text changed to %q without being set", got.Text)
	}
}

func TestTodoService_UpdateTodo_Errors(t *testing.T) {
	svc := newTodoService()
	ctx := context.Background()

	created, err := svc.CreateTodo(ctx, "keep", "u1")
	if err != nil {
		t.Fatalf("CreateTodo: %v", err)
	}

	empty := "   "
	tests := []struct {
		name string
		in   application.UpdateTodoInput
		want error
	}{
		{"missing id", application.UpdateTodoInput{}, domain.ErrInvalidInput},
		{"unknown id", application.UpdateTodoInput{ID: "missing"}, domain.ErrNotFound},
		{"blank text", application.UpdateTodoInput{ID: created.ID, Text: &empty}, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.UpdateTodo(ctx, tt.in, "u1"); !errors.Is(err, tt.want) {
				t.Fatalf("UpdateTodo = %v, want %v", err, tt.want)
			}
		})
	}

	// A todo is invisible to any owner but its own.
	if _, err := svc.UpdateTodo(ctx, application.UpdateTodoInput{ID: created.ID}, "u2"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("UpdateTodo as wrong owner = %v, want ErrNotFound", err)
	}
}

func TestTodoService_DeleteTodo(t *testing.T) {
	svc := newTodoService()
	ctx := context.Background()

	created, err := svc.CreateTodo(ctx, "temp", "u1")
	if err != nil {
		t.Fatalf("CreateTodo: %v", err)
	}

	if err := svc.DeleteTodo(ctx, created.ID, "u1"); err != nil {
		t.Fatalf("DeleteTodo: %v", err)
	}
	if err := svc.DeleteTodo(ctx, created.ID, "u1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second DeleteTodo = %v, want ErrNotFound", err)
	}
	if err := svc.DeleteTodo(ctx, "", "u1"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("DeleteTodo with empty id = %v, want ErrInvalidInput", err)
	}
}

func TestTodoService_GetTodoByID_AbsentIsNil(t *testing.T) {
	svc := newTodoService()

	got, err := svc.GetTodoByID(context.Background(), "missing", "u1")
	if err != nil {
		t.Fatalf("GetTodoByID: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for absent id, got %+v", got)
	}
}

func TestTodoService_SearchTodos_NoClient(t *testing.T) {
	svc := newTodoService()

	hits, err := svc.SearchTodos(context.Background(), "milk", "u1", 10)
	if err != nil {
		t.Fatalf("SearchTodos: %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("expected empty result without a search client, got %d hits", len(hits))
	}
}
