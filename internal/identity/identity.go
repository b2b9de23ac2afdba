// Package identity resolves the acting user for an operation. The
// authentication system itself is external; this layer only answers
// "who is calling" from an already-established uid.
package identity

import (
	"context"

	"github.com/viscontie/junk-mail-service/internal/model"
	"github.com/viscontie/junk-mail-service/internal/store"
)

// User is the identity stamped onto new orders.
type User struct {
	UID         string
	DisplayName string
	Email       string
	PushToken   string
	Staff       bool
}

// Resolver looks up the current user. A missing user is reported with
// ok=false, not an error.
type Resolver interface {
	CurrentUser(ctx context.Context, uid string) (User, bool)
}

// StoreResolver resolves identities against the profile collection.
type StoreResolver struct {
	Store store.Store
}

func (r StoreResolver) CurrentUser(ctx context.Context, uid string) (User, bool) {
	if uid == "" {
		return User{}, false
	}
	p, err := r.Store.GetProfile(ctx, uid)
	if err != nil {
		return User{}, false
	}
	return fromProfile(p), true
}

func fromProfile(p model.UserProfile) User {
	return User{
		UID:         p.UID,
		DisplayName: p.DisplayName(),
		Email:       p.Email,
		PushToken:   p.PushToken,
		Staff:       p.Staff,
	}
}
