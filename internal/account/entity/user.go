// Package entity holds the domain types for the account module.
package entity

import "time"

// User is a registered account holder.
type User struct {
	ID         int64
	Email      string
	FirstName  string
	LastName   string
	BirthDate  time.Time
	OTPSecret  string
	IsVerified bool
	Role       UserRole
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewUser carries the fields required to insert a user. The store assigns the
// ID and timestamps.
type NewUser struct {
	Email     string
	Password  string // hashed
	FirstName string
	LastName  string
	BirthDate time.Time
	OTPSecret string
	Role      UserRole
}
