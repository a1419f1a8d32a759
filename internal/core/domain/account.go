package domain

import (
	"errors"
	"time"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("an account with this email already exists")
	ErrTokenInvalid    = errors.New("login token invalid")
)

// Account is an identity-provider record. Its ID is the subject id shared
// with the User document.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	DisplayName  string
	Claims       map[string]string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session is what a redeemed login token resolves to.
type Session struct {
	UID    string
	UnivID string
}
