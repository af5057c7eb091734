package entity

import "time"

// Login providers.
const (
	ProviderCredentials = "credentials"
	ProviderGoogle      = "google"
)

// User is the aggregate root for the user domain
// Passwords are stored as bcrypt hashes in PasswordHash; the hash is never
// serialized to clients.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Provider     string    `json:"provider"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
