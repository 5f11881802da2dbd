package entity

import (
	"github.com/google/uuid"
)

// Identity is the authenticated customer on whose behalf an operation runs.
// It originates from the external auth system, never from request payloads.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}
