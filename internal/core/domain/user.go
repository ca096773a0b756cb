package domain

import (
	"errors"
	"time"
)

// User types describe how an account participates in the marketplace.
const (
	UserTypeBuyer  = "buyer"
	UserTypeSeller = "seller"
	UserTypeBoth   = "both"
)

// DefaultAvatar is assigned when registration omits an avatar glyph.
const DefaultAvatar = "🧑‍🌾"

var (
	ErrUserExists         = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrValidation         = errors.New("validation failed")
	ErrForbidden          = errors.New("access forbidden")
)

// ValidUserType reports whether t is one of the accepted account types.
func ValidUserType(t string) bool {
	return t == UserTypeBuyer || t == UserTypeSeller || t == UserTypeBoth
}

// User models a registered marketplace account. The password hash never
// leaves the server: the JSON tag strips it from every response.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	FullName     string    `json:"full_name" bson:"full_name"`
	Age          int       `json:"age" bson:"age"`
	Region       string    `json:"region" bson:"region"`
	UserType     string    `json:"user_type" bson:"user_type"`
	Avatar       string    `json:"avatar" bson:"avatar"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// CanSell reports whether the account is allowed to create product listings.
func (u *User) CanSell() bool {
	return u.UserType == UserTypeSeller || u.UserType == UserTypeBoth
}
