package orders

import (
	"context"
	"sort"
	"time"

	"github.com/viscontie/junk-mail-service/internal/model"
	"github.com/viscontie/junk-mail-service/internal/obs"
)

// ForUser filters orders to one user and sorts them most recent first.
// The sort is stable: equal timestamps keep their fetch order.
func ForUser(all []model.Order, userID string) []model.Order {
	var out []model.Order
	for _, o := range all {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// StaffView partitions orders into pending-then-completed. This is not
// a chronological sort: relative order within each partition is
// preserved exactly as fetched, and completed orders simply sink to the
// bottom of the list.
func StaffView(all []model.Order) []model.Order {
	out := make([]model.Order, len(all))
	copy(out, all)
	sort.SliceStable(out, func(i, j int) bool {
		return !out[i].Completed() && out[j].Completed()
	})
	return out
}

// MostRecentCompleted returns the first completed order in a
// most-recent-first list.
func MostRecentCompleted(sorted []model.Order) (model.Order, bool) {
	for _, o := range sorted {
		if o.Completed() {
			return o, true
		}
	}
	return model.Order{}, false
}

// YearlyProductCounts sums quantities per product across the orders
// placed in the given calendar year. Years are bucketed in loc, the
// explicit reporting timezone. Products with no orders are absent from
// the result.
func YearlyProductCounts(all []model.Order, year int, loc *time.Location) map[string]int {
	counts := make(map[string]int)
	for _, o := range all {
		if o.CreatedAt.In(loc).Year() != year {
			continue
		}
		for _, it := range o.Items {
			counts[it.Name] += it.Qty
		}
	}
	return counts
}

// TotalOrders counts the orders placed in the given calendar year,
// bucketed in loc.
func TotalOrders(all []model.Order, year int, loc *time.Location) int {
	n := 0
	for _, o := range all {
		if o.CreatedAt.In(loc).Year() == year {
			n++
		}
	}
	return n
}

// History is the customer past-orders view.
type History struct {
	// Orders is the user's history, most recent first. Empty when the
	// save-orders preference is off, regardless of what is persisted.
	Orders []model.Order `json:"orders"`
	// MostRecentCompleted surfaces the latest delivery even when history
	// retention is off, so the screen can show a last-delivery date.
	MostRecentCompleted *model.Order `json:"most_recent_completed,omitempty"`
	// SaveOrders echoes the preference that shaped this result.
	SaveOrders bool `json:"save_orders"`
}

// LoadHistory builds the past-orders view for one user. A store read
// failure degrades to an empty history; the screen has no retry
// affordance, so the error is logged rather than propagated.
func (s *Service) LoadHistory(ctx context.Context, uid string) History {
	p := s.Prefs.Get(uid)
	all, err := s.Store.ListOrders(ctx)
	if err != nil {
		obs.Logger.Error("load_orders_failed", "user_id", uid, "error", err)
		return History{SaveOrders: p.SaveOrders}
	}
	sorted := ForUser(all, uid)
	h := History{SaveOrders: p.SaveOrders}
	if recent, ok := MostRecentCompleted(sorted); ok {
		h.MostRecentCompleted = &recent
	}
	if p.SaveOrders {
		h.Orders = sorted
	}
	return h
}

// LoadStaffView returns every order, pending first. A read failure
// degrades to an empty list, logged.
func (s *Service) LoadStaffView(ctx context.Context) []model.Order {
	all, err := s.Store.ListOrders(ctx)
	if err != nil {
		obs.Logger.Error("load_orders_failed", "error", err)
		return nil
	}
	return StaffView(all)
}

// Stats is the yearly reporting summary.
type Stats struct {
	Year          int            `json:"year"`
	TotalOrders   int            `json:"total_orders"`
	ProductCounts map[string]int `json:"product_counts"`
}

// LoadStats aggregates totals for one calendar year in the service's
// reporting timezone. A read failure degrades to empty stats, logged.
func (s *Service) LoadStats(ctx context.Context, year int) Stats {
	all, err := s.Store.ListOrders(ctx)
	if err != nil {
		obs.Logger.Error("load_orders_failed", "error", err)
		all = nil
	}
	return Stats{
		Year:          year,
		TotalOrders:   TotalOrders(all, year, s.Location),
		ProductCounts: YearlyProductCounts(all, year, s.Location),
	}
}
