package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email is already registered")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Course errors
	ErrUnknownCourse = errors.New("unknown course")
)
