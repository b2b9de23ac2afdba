// Package store is the persistence collaborator: a thin document-store
// abstraction over orders and user profiles. Reads are not guaranteed
// strongly consistent with prior writes; callers treat the store as
// last-writer-wins.
package store

import (
	"context"
	"errors"

	"github.com/viscontie/junk-mail-service/internal/model"
)

// ErrNotFound is returned when a document id has no backing record.
var ErrNotFound = errors.New("store: not found")

// OrderPatch holds the mutable order fields for partial updates. Nil
// fields are left untouched.
type OrderPatch struct {
	Status      *model.OrderStatus
	DeliveredBy *string
}

// ProfilePatch holds the mutable profile fields for partial updates.
type ProfilePatch struct {
	PushToken             *string
	DeliveryNotifications *bool
	Notif                 *bool
}

// Store is the document-store surface the service consumes.
type Store interface {
	// CreateOrder persists a new order and returns its assigned id.
	CreateOrder(ctx context.Context, o model.Order) (string, error)
	// GetOrder fetches one order by id.
	GetOrder(ctx context.Context, id string) (model.Order, error)
	// ListOrders returns every order, most recent first.
	ListOrders(ctx context.Context) ([]model.Order, error)
	// UpdateOrder applies a partial update to one order.
	UpdateOrder(ctx context.Context, id string, p OrderPatch) error
	// DeleteOrder removes one order.
	DeleteOrder(ctx context.Context, id string) error
	// ClearOrders removes every order. Administrative use only.
	ClearOrders(ctx context.Context) error

	// GetProfile fetches one user profile by uid.
	GetProfile(ctx context.Context, uid string) (model.UserProfile, error)
	// PutProfile creates or replaces a user profile.
	PutProfile(ctx context.Context, u model.UserProfile) error
	// UpdateProfile applies a partial update to one profile.
	UpdateProfile(ctx context.Context, uid string, p ProfilePatch) error
}

func applyOrderPatch(o *model.Order, p OrderPatch) {
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.DeliveredBy != nil {
		o.DeliveredBy = *p.DeliveredBy
	}
}

func applyProfilePatch(u *model.UserProfile, p ProfilePatch) {
	if p.PushToken != nil {
		u.PushToken = *p.PushToken
	}
	if p.DeliveryNotifications != nil {
		u.DeliveryNotifications = *p.DeliveryNotifications
	}
	if p.Notif != nil {
		u.Notif = *p.Notif
	}
}
