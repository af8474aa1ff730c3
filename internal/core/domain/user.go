package domain

import (
	"encoding/json"
	"errors"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionNotFound  = errors.New("session not found")
)

// User is the account identity returned by the auth endpoint.
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
}

// Session pairs the authenticated user with its bearer token.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// ParseUser decodes a persisted user value. Anything that is not a JSON object
// carrying an email is rejected.
func ParseUser(raw []byte) (User, error) {
	var u User
	if !json.Valid(raw) {
		return User{}, errors.New("user: invalid json")
	}
	if err := json.Unmarshal(raw, &u); err != nil {
		return User{}, err
	}
	if u.Email == "" {
		return User{}, errors.New("user: missing email")
	}
	return u, nil
}
