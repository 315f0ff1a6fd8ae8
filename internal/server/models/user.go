package models

import "time"

// User is the persisted credential record. RefreshToken mirrors the
// currently valid refresh token; an empty value means the user has no active
// session, so any cryptographically valid refresh token is still rejected.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	RefreshToken string
	CreatedAt    time.Time
}
