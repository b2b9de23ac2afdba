package orders

import (
	"context"
	"fmt"

	"github.com/viscontie/junk-mail-service/internal/model"
	"github.com/viscontie/junk-mail-service/internal/notify"
	"github.com/viscontie/junk-mail-service/internal/obs"
	"github.com/viscontie/junk-mail-service/internal/store"
)

// MarkCompleted transitions an order from pending to completed on
// behalf of the staff user staffUID. The transition is one-way; calling
// it on an already-completed order is a warned no-op that does not
// re-send the delivery notification.
//
// Only the status write can fail the call. The staff audit stamp and
// the delivery push with its bell flag are best-effort: their failures
// are logged and swallowed so the committed transition never appears to
// roll back.
func (s *Service) MarkCompleted(ctx context.Context, orderID, staffUID string) (model.Order, error) {
	o, err := s.Store.GetOrder(ctx, orderID)
	if err != nil {
		return model.Order{}, fmt.Errorf("load order %s: %w", orderID, err)
	}
	if o.Completed() {
		obs.Logger.Warn("order_already_completed", "order_id", orderID)
		return o, nil
	}

	completed := model.StatusCompleted
	if err := s.Store.UpdateOrder(ctx, orderID, store.OrderPatch{Status: &completed}); err != nil {
		return model.Order{}, fmt.Errorf("complete order %s: %w", orderID, err)
	}
	o.Status = completed
	obs.Logger.Info("order_completed", "order_id", orderID, "staff_id", staffUID)

	s.stampDeliveredBy(ctx, &o, staffUID)
	s.notifyDelivery(ctx, o)
	return o, nil
}

// stampDeliveredBy records which staff member fulfilled the order, for
// display on the receipt. Best-effort.
func (s *Service) stampDeliveredBy(ctx context.Context, o *model.Order, staffUID string) {
	staff, ok := s.Identity.CurrentUser(ctx, staffUID)
	if !ok || staff.DisplayName == "" {
		return
	}
	name := staff.DisplayName
	if err := s.Store.UpdateOrder(ctx, o.ID, store.OrderPatch{DeliveredBy: &name}); err != nil {
		obs.Logger.Warn("delivered_by_stamp_failed", "order_id", o.ID, "error", err)
		return
	}
	o.DeliveredBy = name
}

// notifyDelivery pushes the delivery confirmation to the ordering user
// and raises their one-shot bell flag. Skipped entirely unless the user
// has both a push token and delivery notifications enabled. Best-effort.
func (s *Service) notifyDelivery(ctx context.Context, o model.Order) {
	user, err := s.Store.GetProfile(ctx, o.UserID)
	if err != nil {
		obs.Logger.Warn("delivery_notify_skipped", "order_id", o.ID, "error", err)
		return
	}
	if user.PushToken == "" || !user.DeliveryNotifications {
		obs.Logger.Info("delivery_notify_skipped", "order_id", o.ID, "reason", "no token or notifications off")
		return
	}
	if err := s.Notifier.Send(ctx, notify.DeliveryMessage(user.PushToken, o.ID)); err != nil {
		obs.Logger.Warn("delivery_push_failed", "order_id", o.ID, "error", err)
	}
	raised := true
	if err := s.Store.UpdateProfile(ctx, user.UID, store.ProfilePatch{Notif: &raised}); err != nil {
		obs.Logger.Warn("bell_flag_update_failed", "user_id", user.UID, "error", err)
	}
}

// ConsumeBell reads and clears the user's one-shot "new delivery" flag.
// It reports whether the bell was set.
func (s *Service) ConsumeBell(ctx context.Context, uid string) bool {
	user, err := s.Store.GetProfile(ctx, uid)
	if err != nil || !user.Notif {
		return false
	}
	cleared := false
	if err := s.Store.UpdateProfile(ctx, uid, store.ProfilePatch{Notif: &cleared}); err != nil {
		obs.Logger.Warn("bell_flag_clear_failed", "user_id", uid, "error", err)
	}
	return true
}
