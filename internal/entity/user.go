package entity

import "time"

// User is an account of the login subsystem. It is unrelated to the desk
// service entities; nothing there references it.
//
// PasswordHash is a bcrypt hash and is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
