package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-todo-api/internal/domain"
	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	repo "github.com/oksasatya/go-todo-api/internal/domain/repository"
	"github.com/oksasatya/go-todo-api/pkg/helpers"
)

// Original signup rule: anything shorter is rejected before hashing.
const minPasswordLength = 4

// AuthService issues credentials and resolves bearer tokens back into user
// records. Tokens are stateless: every call re-verifies signature and expiry
// and re-resolves the subject against the user store.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

type SignupInput struct {
	Email    string
	Password string
	Name     string
}

// Signup creates a credentials account and issues a token for it. The
// password is bcrypt-hashed before storage and never returned.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*entity.User, string, error) {
	// Emails are stored lowercased so uniqueness and lookup behave the
	// same across storage drivers.
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" || in.Password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}
	if len(in.Password) < minPasswordLength {
		return nil, "", fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}

	name := in.Name
	if name == "" {
		name = strings.SplitN(in.Email, "@", 2)[0]
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{
		Email:        in.Email,
		PasswordHash: hash,
		Name:         name,
		Provider:     entity.ProviderCredentials,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, _, err := s.JWT.Generate(u.ID, u.Email)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	u.PasswordHash = ""
	return u, token, nil
}

// Login verifies email/password and issues a fresh token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
	}
	if u.PasswordHash == "" {
		// OAuth account without a stored credential.
		return nil, "", fmt.Errorf("%w: invalid authentication method", domain.ErrUnauthorized)
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		if s.Logger != nil {
			s.Logger.WithField("email", email).Warn("failed login attempt")
		}
		return nil, "", fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
	}

	token, _, err := s.JWT.Generate(u.ID, u.Email)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	u.PasswordHash = ""
	return u, token, nil
}

// Authenticate resolves a bearer token into the user it was issued for.
// The returned record has its password hash stripped.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: authentication required", domain.ErrUnauthorized)
	}

	claims, err := s.JWT.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid or expired token", domain.ErrUnauthorized)
	}

	u, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: user not found", domain.ErrUnauthorized)
	}

	u.PasswordHash = ""
	return u, nil
}

// GetUserByID loads a user with the password hash stripped.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}
