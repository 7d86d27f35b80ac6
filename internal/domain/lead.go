package domain

import (
	"time"

	"github.com/google/uuid"
)

// Lead is a landing-page contact request. It shares no invariants with
// Registration: no payment, no file.
type Lead struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
