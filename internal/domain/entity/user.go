package entity

import "time"

// User is an account allowed to log in and modify the catalog.
type User struct {
	ID           int64     // Storage-assigned identifier.
	Username     string    // Unique login name, 5 to 255 characters.
	PasswordHash string    // One-way digest of the password; plaintext is never stored.
	IsActive     bool      // Inactive users cannot log in.
	CreatedAt    time.Time // Set once when the account is created.
}
