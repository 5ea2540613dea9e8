package auth

import "github.com/google/uuid"

// Roles a principal can hold
const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
)

// Principal is an authenticated identity as returned by the OAuth callback
type Principal struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Picture string    `json:"picture"`
	Role    string    `json:"role"`
}
