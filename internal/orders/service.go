// Package orders implements the order lifecycle: submission of a cart
// as a persisted order, aggregation of order history for customer and
// staff views, and the staff fulfillment workflow.
package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/viscontie/junk-mail-service/internal/cart"
	"github.com/viscontie/junk-mail-service/internal/identity"
	"github.com/viscontie/junk-mail-service/internal/model"
	"github.com/viscontie/junk-mail-service/internal/notify"
	"github.com/viscontie/junk-mail-service/internal/obs"
	"github.com/viscontie/junk-mail-service/internal/prefs"
	"github.com/viscontie/junk-mail-service/internal/store"
)

// ErrEmptyCart rejects submission of a cart with no items. No external
// call is made when it is returned.
var ErrEmptyCart = errors.New("orders: cart is empty")

// ErrNoUser rejects operations with no resolvable acting user.
var ErrNoUser = errors.New("orders: no signed-in user")

// Service wires the order core to its collaborators.
type Service struct {
	Store    store.Store
	Identity identity.Resolver
	Notifier notify.Sender
	Prefs    prefs.Store

	// Location is the reporting timezone for yearly stats.
	Location *time.Location

	// now is swappable for tests.
	now func() time.Time
}

// NewService builds a Service. loc may be nil for UTC.
func NewService(st store.Store, id identity.Resolver, n notify.Sender, p prefs.Store, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		Store:    st,
		Identity: id,
		Notifier: n,
		Prefs:    p,
		Location: loc,
		now:      time.Now,
	}
}

// Submit persists the cart as a new pending order stamped with the
// acting user's identity and push token. The cart itself is not cleared
// here; the caller clears it after a successful return so a failed
// submit can be retried with the same cart.
func (s *Service) Submit(ctx context.Context, uid string, c cart.Cart, notes string) (model.Order, error) {
	if c.Empty() {
		return model.Order{}, ErrEmptyCart
	}
	user, ok := s.Identity.CurrentUser(ctx, uid)
	if !ok {
		return model.Order{}, ErrNoUser
	}
	o := model.Order{
		UserID:    user.UID,
		UserName:  user.DisplayName,
		UserEmail: user.Email,
		Items:     c.Items(),
		Notes:     notes,
		PushToken: user.PushToken,
		Status:    model.StatusPending,
		CreatedAt: s.now().UTC(),
	}
	id, err := s.Store.CreateOrder(ctx, o)
	if err != nil {
		return model.Order{}, fmt.Errorf("save order: %w", err)
	}
	o.ID = id
	obs.Logger.Info("order_submitted", "order_id", id, "user_id", user.UID, "items", len(o.Items))
	return o, nil
}

// ClearAll deletes every persisted order. Administrative, irreversible.
func (s *Service) ClearAll(ctx context.Context) error {
	if err := s.Store.ClearOrders(ctx); err != nil {
		return fmt.Errorf("clear orders: %w", err)
	}
	obs.Logger.Info("orders_cleared")
	return nil
}
