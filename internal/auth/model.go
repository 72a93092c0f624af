// Package auth owns user accounts, credentials and the request identity
// middleware. The cart/order core treats it as the identity collaborator.
package auth

import "time"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	IsAdmin      bool      `json:"is_admin"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterRequest payload of account creation.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Email    string `json:"email"     example:"mario@example.com"`
	Password string `json:"password"  example:"correct horse"`
	FullName string `json:"full_name" example:"Mario Rossi"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// LoginRequest payload of authentication.
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email"    example:"mario@example.com"`
	Password string `json:"password" example:"correct horse"`
}

// AuthResponse carries the bearer token plus the account it belongs to.
// swagger:model AuthResponse
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
