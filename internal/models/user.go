// Package models defines the domain types shared by the Latte Art Meister
// stores: users, credential records, latte submissions, and chat messages.
// The JSON tags mirror the persisted storage layout, so a value round-trips
// through the key-value store unchanged.
package models

import "time"

// User is an account known to the application. Passwords never appear here;
// they live only inside the credential store's records.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
