package sessionservice

import (
	"context"
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// User is the copy of the signed-in user a session carries. It is not
// refreshed from the database.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Session struct {
	Token     string    `json:"-"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	Expiry    time.Time `json:"expiry"`
}

var AnonymousSession = &Session{}

func (s *Session) IsAnonymous() bool {
	return s == AnonymousSession
}

// Store binds opaque client tokens to signed-in users. Sessions end when they
// expire; there is no explicit destroy.
type Store interface {
	Establish(ctx context.Context, user User) (*Session, error)
	Current(ctx context.Context, token string) (*Session, error)
	UpdateDisplayName(ctx context.Context, token, name string) error
}
