package entity

import "time"

// Todo is a single task owned by exactly one user. The owner id scopes
// every repository operation; todos are never shared between users.
type Todo struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	OwnerID   string    `json:"-"`
}
