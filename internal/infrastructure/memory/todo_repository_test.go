package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/oksasatya/go-todo-api/internal/domain"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
	"github.com/oksasatya/go-todo-api/internal/infrastructure/memory"
)

func TestTodoRepository_CreateAndFind(t *testing.T) {
	repo := memory.NewTodoRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, "Buy milk", false, "u1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected id to be set")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
	if created.Completed {
		t.Fatal("expected new todo to be incomplete")
	}

	got, err := repo.FindByID(ctx, created.ID, "u1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got == nil {
		t.Fatal("expected todo, got nil")
	}
	if got.Text != "Buy milk" {
		t.Fatalf("Text = %q, want %q", got.Text, "Buy milk")
	}
}

func TestTodoRepository_FindByID_Absent(t *testing.T) {
	repo := memory.NewTodoRepository()

	got, err := repo.FindByID(context.Background(), "missing", "u1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for absent id, got %+v", got)
	}
}

func TestTodoRepository_OwnerIsolation(t *testing.T) {
	repo := memory.NewTodoRepository()
	ctx := context.Background()

	mine, err := repo.Create(ctx, "mine", false, "u1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Create(ctx, "theirs", false, "u2"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	todos, err := repo.FindAll(ctx, "u1")
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(todos) != 1 {
		t.Fatalf("len(todos) = %d, want 1", len(todos))
	}
	if todos[0].Text != "mine" {
		t.Fatalf("Text = %q, want %q", todos[0].Text, "mine")
	}

	// Another owner's id behaves exactly like an absent one.
	got, err := repo.FindByID(ctx, mine.ID, "u2")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for another owner's todo")
	}
	if err := repo.Delete(ctx, mine.ID, "u2"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Delete as wrong owner = %v, want ErrNotFound", err)
	}
}

func TestTodoRepository_Update(t *testing.T) {
	repo := memory.NewTodoRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, "original", false, "u1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	text := "updated"
	got, err := repo.Update(ctx, created.ID, repository.TodoUpdate{Text: &text}, "u1")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Text != "updated" {
		t.Fatalf("Text = %q, want %q", got.Text, "updated")
	}
	if got.Completed {
		t.Fatal("Completed changed without being set")
	}

	done := true
	got, err = repo.Update(ctx, created.ID, repository.TodoUpdate{Completed: &done}, "u1")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !got.Completed {
		t.Fatal("expected Completed to be true")
	}
	if got.Text != "updated" {
		t.Fatalf("Text changed to %q without being set", got.Text)
	}
}

func TestTodoRepository_Update_NotFound(t *testing.T) {
	repo := memory.NewTodoRepository()

	text := "x"
	_, err := repo.Update(context.Background(), "missing", repository.TodoUpdate{Text: &text}, "u1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Update = %v, want ErrNotFound", err)
	}
}

func TestTodoRepository_Delete(t *testing.T) {
	repo := memory.NewTodoRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, "temp", false, "u1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(ctx, created.ID, "u1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, err := repo.FindByID(ctx, created.ID, "u1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got != nil {
		t.Fatal("expected todo to be gone")
	}

	if err := repo.Delete(ctx, created.ID, "u1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestTodoRepository_ReturnsCopies(t *testing.T) {
	repo := memory.NewTodoRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, "stable", false, "u1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Mutating a returned record must not leak into the store.
	created.Text = "mutated"

	got, err := repo.FindByID(ctx, created.ID, "u1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Text != "stable" {
		t.Fatalf("stored Text = %q, want %q", got.Text, "stable")
	}

	todos, err := repo.FindAll(ctx, "u1")
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	todos[0].Text = "mutated again"

	got, err = repo.FindByID(ctx, created.ID, "u1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Text != "stable" {
		t.Fatalf("stored Text = %q, want %q", got.Text, "stable")
	}
}

func TestTodoRepository_UniqueIDs(t *testing.T) {
	repo := memory.NewTodoRepository()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		created, err := repo.Create(ctx, "item", false, "u1")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if seen[created.ID] {
			t.Fatalf("duplicate id %s", created.ID)
		}
		seen[created.ID] = true
	}
}
