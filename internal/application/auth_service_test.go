package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oksasatya/go-todo-api/internal/application"
	"github.com/oksasatya/go-todo-api/internal/domain"
	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/infrastructure/memory"
	"github.com/oksasatya/go-todo-api/pkg/helpers"
)

func newAuthService() *application.AuthService {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return application.NewAuthService(memory.NewUserRepository(), jwt, nil)
}

func TestAuthService_Signup(t *testing.T) {
	svc := newAuthService()

	u, token, err := svc.Signup(context.Background(), application.SignupInput{
		Email:    "alice@example.com",
		Password: "secret",
		Name:     "Alice",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if u.ID == "" {
		t.Fatal("expected user id to be set")
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if u.PasswordHash != "" {
		t.Fatal("password hash leaked in signup response")
	}
	if u.Provider != entity.ProviderCredentials {
		t.Fatalf("Provider = %q, want %q", u.Provider, entity.ProviderCredentials)
	}
}

func TestAuthService_Signup_DefaultsName(t *testing.T) {
	svc := newAuthService()

	u, _, err := svc.Signup(context.Background(), application.SignupInput{
		Email:    "bob@example.com",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if u.Name != "bob" {
		t.Fatalf("Name = %q, want %q", u.Name, "bob")
	}
}

func TestAuthService_Signup_Validation(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	tests := []struct {
		name string
		in   application.SignupInput
		want error
	}{
		{"missing email", application.SignupInput{Password: "secret"}, domain.ErrInvalidInput},
		{"missing password", application.SignupInput{Email: "a@b.com"}, domain.ErrInvalidInput},
		{"short password", application.SignupInput{Email: "a@b.com", Password: "abc"}, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := svc.Signup(ctx, tt.in); !errors.Is(err, tt.want) {
				t.Fatalf("Signup = %v, want %v", err, tt.want)
			}
		})
	}

	// Exactly the minimum length passes.
	if _, _, err := svc.Signup(ctx, application.SignupInput{Email: "min@b.com", Password: "test"}); err != nil {
		t.Fatalf("Signup with minimum password: %v", err)
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	in := application.SignupInput{Email: "dup@example.com", Password: "secret"}
	if _, _, err := svc.Signup(ctx, in); err != nil {
		t.Fatalf("first Signup: %v", err)
	}
	if _, _, err := svc.Signup(ctx, in); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("second Signup = %v, want ErrEmailTaken", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	if _, _, err := svc.Signup(ctx, application.SignupInput{Email: "carol@example.com", Password: "secret"}); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	u, token, err := svc.Login(ctx, "carol@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if u.PasswordHash != "" {
		t.Fatal("password hash leaked in login response")
	}

	if _, _, err := svc.Login(ctx, "carol@example.com", "wrong"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("Login with wrong password = %v, want ErrUnauthorized", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@example.com", "secret"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("Login with unknown email = %v, want ErrUnauthorized", err)
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	created, token, err := svc.Signup(ctx, application.SignupInput{Email: "dave@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	u, err := svc.Authenticate(ctx, token)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if u.ID != created.ID {
		t.Fatalf("ID = %q, want %q", u.ID, created.ID)
	}
	if u.PasswordHash != "" {
		t.Fatal("password hash leaked from Authenticate")
	}

	if _, err := svc.Authenticate(ctx, ""); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("Authenticate with empty token = %v, want ErrUnauthorized", err)
	}
	if _, err := svc.Authenticate(ctx, "not-a-token"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("Authenticate with garbage = %v, want ErrUnauthorized", err)
	}
}

func TestAuthService_Authenticate_ExpiredToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", -time.Minute)
	svc := application.NewAuthService(memory.NewUserRepository(), jwt, nil)
	ctx := context.Background()

	_, token, err := svc.Signup(ctx, application.SignupInput{Email: "eve@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	if _, err := svc.Authenticate(ctx, token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("Authenticate with expired token = %v, want ErrUnauthorized", err)
	}
}
