package model

import "time"

// UserID uniquely identifies a registered user across the system
type UserID int64

// User is a registered prospective student
type User struct {
	ID           UserID
	Name         string
	Birthday     string // free-text date string, stored as entered
	Email        string // login key, unique across the store
	PasswordHash string // salted PBKDF2 derivation, never the raw password
	Course       string // one of the catalog courses, or empty
	RegisterTime time.Time
}
