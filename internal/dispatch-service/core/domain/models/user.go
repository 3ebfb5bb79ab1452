package models

import "time"

const RoleDriver = "driver"

type User struct {
	ID           int64
	Login        string
	Role         string
	PasswordHash []byte
	CreatedAt    time.Time
}

// TokenClaims is the identity decoded out of a validated access token.
type TokenClaims struct {
	UserID int64
	Login  string
}
