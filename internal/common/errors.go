// Package common defines shared sentinel errors used across the Latte Art
// Meister stores. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Session errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// Repository-level errors.
	ErrNotFound = errors.New("not found")
)
