package entities

import "time"

// Notification is an in-platform message addressed to one user. Dispatch is
// fire-and-forget: a failed write never fails the originating operation.
//
// Storage model (DynamoDB):
//   - PK: id

type Notification struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	ActionLink string    `json:"action_link,omitempty"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}
