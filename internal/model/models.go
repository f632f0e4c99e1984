package model

import "time"

type ID = uint

type User struct {
	ID         ID        `json:"id" db:"id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	ModifiedAt time.Time `json:"modifiedAt" db:"modified_at"`

	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`

	// bcrypt hash, never serialized
	Password string `json:"-" db:"password"`
}

type Schedule struct {
	ID         ID        `json:"id" db:"id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	ModifiedAt time.Time `json:"modifiedAt" db:"modified_at"`

	Title   string `json:"title" db:"title"`
	Content string `json:"content" db:"content"`

	User      ID     `json:"-" db:"user_id"`
	UserEmail string `json:"userEmail" db:"user_email"`
}

type Comment struct {
	ID         ID        `json:"id" db:"id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	ModifiedAt time.Time `json:"modifiedAt" db:"modified_at"`

	Content string `json:"content" db:"content"`

	Schedule  ID     `json:"scheduleId" db:"schedule_id"`
	User      ID     `json:"-" db:"user_id"`
	UserEmail string `json:"userEmail" db:"user_email"`
}

// Session is a server-side login record, handed to the browser as an
// opaque token in a cookie.
type Session struct {
	Token     string    `json:"-" db:"token"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`

	User      ID     `json:"userId" db:"user_id"`
	UserEmail string `json:"userEmail" db:"user_email"`
}

// SessionUser is the identity attached to an authenticated request.
type SessionUser struct {
	ID    ID
	Email string
}
