package models

import "strings"

// User represents a registered account. A User resolved from a bearer token
// acts as the principal for the rest of the request.
type User struct {
	ID           int     `json:"id" bson:"id"`
	Username     string  `json:"username" bson:"username"`
	Email        *string `json:"email,omitempty" bson:"email,omitempty"`
	Disabled     bool    `json:"disabled" bson:"disabled"`
	PasswordHash string  `json:"-" bson:"password_hash"` // Never serialize the hash
}

// UserCreate is the registration request body.
type UserCreate struct {
	Username string  `json:"username"`
	Email    *string `json:"email"`
	Password string  `json:"password"`
}

// Validate rejects blank usernames and passwords before any hashing happens.
func (c *UserCreate) Validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return errFieldRequired("username")
	}
	if strings.TrimSpace(c.Password) == "" {
		return errFieldRequired("password")
	}
	return nil
}
