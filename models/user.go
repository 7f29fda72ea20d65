package models

import "time"

// User is a CRM account. Role is an informational tag carried in the token
// claims; it is not an authorization boundary.
type User struct {
	ID           string    `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	TokenHash    string    `db:"token_hash" json:"-"` // hash of the live token, empty after logout
	Role         string    `db:"role" json:"role"`
	FCMToken     string    `db:"fcm_token" json:"fcmToken,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// AuthResponse is returned on successful register/login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
