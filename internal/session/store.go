// Package session holds server-side session state behind an opaque
// cookie-carried identifier. The identifier itself carries no claims;
// everything about the user is looked up in the Store on each request.
package session

import (
	"context"
	"errors"
	"time"
)

var ErrNoSession = errors.New("session not found or expired")

// Data is what the server remembers about an authenticated identity.
type Data struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Store interface {
	Save(ctx context.Context, id string, data Data, ttl time.Duration) error
	Get(ctx context.Context, id string) (Data, error)
	Delete(ctx context.Context, id string) error
}
