package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/viscontie/junk-mail-service/internal/cart"
	"github.com/viscontie/junk-mail-service/internal/catalog"
	httpopenapi "github.com/viscontie/junk-mail-service/internal/http/openapi"
	"github.com/viscontie/junk-mail-service/internal/identity"
	"github.com/viscontie/junk-mail-service/internal/orders"
	"github.com/viscontie/junk-mail-service/internal/prefs"
	"github.com/viscontie/junk-mail-service/internal/store"
)

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		WriteJSONError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "expected application/json")
		return false
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return false
	}
	return true
}

// requireUser resolves the acting user or writes a 401.
func (a *App) requireUser(w http.ResponseWriter, r *http.Request) (identity.User, bool) {
	u, ok := a.Identity.CurrentUser(r.Context(), UserIDFromContext(r.Context()))
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "unauthorized", "no signed-in user")
		return identity.User{}, false
	}
	return u, true
}

// requireStaff resolves the acting user and checks the staff flag.
func (a *App) requireStaff(w http.ResponseWriter, r *http.Request) (identity.User, bool) {
	u, ok := a.requireUser(w, r)
	if !ok {
		return identity.User{}, false
	}
	if !u.Staff {
		WriteJSONError(w, http.StatusForbidden, "forbidden", "staff only")
		return identity.User{}, false
	}
	return u, true
}

// --- catalog ---

func (a *App) getCatalogHandler(w http.ResponseWriter, r *http.Request) {
	if c := r.URL.Query().Get("category"); c != "" {
		writeJSON(w, http.StatusOK, catalog.ByCategory(catalog.Category(c)))
		return
	}
	writeJSON(w, http.StatusOK, catalog.Products())
}

// --- cart ---

type cartView struct {
	Items cart.Cart `json:"items"`
}

func (a *App) getCartHandler(w http.ResponseWriter, r *http.Request) {
	u, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, cartView{Items: a.Carts.Get(u.UID)})
}

func (a *App) addCartItemHandler(w http.ResponseWriter, r *http.Request) {
	u, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if _, ok := catalog.Lookup(req.Name); !ok {
		WriteJSONError(w, http.StatusNotFound, "unknown_product", req.Name)
		return
	}
	next := a.Carts.Mutate(u.UID, func(c cart.Cart) cart.Cart {
		c, _ = cart.Adjust(c, req.Name, +1)
		return c
	})
	writeJSON(w, http.StatusOK, cartView{Items: next})
}

func (a *App) setCartItemHandler(w http.ResponseWriter, r *http.Request) {
	u, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	name := r.PathValue("name")
	if _, ok := catalog.Lookup(name); !ok {
		WriteJSONError(w, http.StatusNotFound, "unknown_product", name)
		return
	}
	var req struct {
		Qty int `json:"qty"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	// Over-limit requests are rejected silently: the cart comes back
	// unchanged, matching the tile counter behavior.
	limit := catalog.LimitFor(name)
	next := a.Carts.Mutate(u.UID, func(c cart.Cart) cart.Cart {
		if req.Qty > limit {
			return c
		}
		return c.SetQuantity(name, req.Qty)
	})
	writeJSON(w, http.StatusOK, cartView{Items: next})
}

func (a *App) deleteCartItemHandler(w http.ResponseWriter, r *http.Request) {
	u, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	name := r.PathValue("name")
	next := a.Carts.Mutate(u.UID, func(c cart.Cart) cart.Cart {
		return c.Remove(name)
	})
	writeJSON(w, http.StatusOK, cartView{Items: next})
}

func (a *App) clearCartHandler(w http.ResponseWriter, r *http.Request) {
	u, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	a.Carts.Drop(u.UID)
	writeJSON(w, http.StatusOK, cartView{Items: cart.Cart{}})
}

// reorderHandler repopulates the cart from one of the user's past
// orders.
func (a *App) reorderHandler(w http.ResponseWriter, r *http.Request) {
	u, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	var req struct {
		OrderID string `json:"order_id"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	o, err := a.Store.GetOrder(r.Context(), req.OrderID)
	if err != nil || o.UserID != u.UID {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	next := a.Carts.Mutate(u.UID, func(c cart.Cart) cart.Cart {
		return c.ReplaceAll(cart.FromOrder(o))
	})
	writeJSON(w, http.StatusOK, cartView{Items: next})
}

// --- orders ---

func (a *App) submitOrderHandler(w http.ResponseWriter, r *http.Request) {
	u, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	var req struct {
		Notes string `json:"notes"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	o, err := a.Service.Submit(r.Context(), u.UID, a.Carts.Get(u.UID), req.Notes)
	switch {
	case errors.Is(err, orders.ErrEmptyCart):
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "cart is empty")
		return
	case errors.Is(err, orders.ErrNoUser):
		WriteJSONError(w, http.StatusUnauthorized, "unauthorized", "no signed-in user")
		return
	case err != nil:
		WriteJSONError(w, http.StatusBadGateway, "store_error", err.Error())
		return
	}
	// Submission succeeded; clearing the cart is the caller's job, so a
	// failed submit leaves the cart intact for retry.
	a.Carts.Drop(u.UID)
	writeJSON(w, http.StatusCreated, o)
}

func (a *App) historyHandler(w http.ResponseWriter, r *http.Request) {
	u, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, a.Service.LoadHistory(r.Context(), u.UID))
}

func (a *App) staffOrdersHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireStaff(w, r); !ok {
		return
	}
	writeJSON(w, http.StatusOK, a.Service.LoadStaffView(r.Context()))
}

func (a *App) completeOrderHandler(w http.ResponseWriter, r *http.Request) {
	u, ok := a.requireStaff(w, r)
	if !ok {
		return
	}
	o, err := a.Service.MarkCompleted(r.Context(), r.PathValue("id"), u.UID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "not_found", "")
			return
		}
		WriteJSONError(w, http.StatusBadGateway, "store_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (a *App) clearOrdersHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireStaff(w, r); !ok {
		return
	}
	if err := a.Service.ClearAll(r.Context()); err != nil {
		WriteJSONError(w, http.StatusBadGateway, "store_error", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) statsHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireStaff(w, r); !ok {
		return
	}
	year := time.Now().In(a.Service.Location).Year()
	if y := r.URL.Query().Get("year"); y != "" {
		n, err := strconv.Atoi(y)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "validation_error", "year must be an integer")
			return
		}
		year = n
	}
	writeJSON(w, http.StatusOK, a.Service.LoadStats(r.Context(), year))
}

// --- preferences & notifications ---

func (a *App) getPrefsHandler(w http.ResponseWriter, r *http.Request) {
	u, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, a.Prefs.Get(u.UID))
}

func (a *App) putPrefsHandler(w http.ResponseWriter, r *http.Request) {
	u, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	var req prefs.Preferences
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Reminder == "" {
		req.Reminder = prefs.Never
	}
	if !req.Reminder.Valid() {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "unknown reminder frequency")
		return
	}
	a.Prefs.Set(u.UID, req)
	// The delivery toggle also lives on the profile so fulfillment can
	// read it without reaching into local preferences.
	enabled := req.Notifications
	if err := a.Store.UpdateProfile(r.Context(), u.UID, store.ProfilePatch{DeliveryNotifications: &enabled}); err != nil {
		WriteJSONError(w, http.StatusBadGateway, "store_error", err.Error())
		return
	}
	if a.Reminders != nil {
		freq := req.Reminder
		if !req.Notifications {
			freq = prefs.Never
		}
		a.Reminders.Schedule(u.UID, u.PushToken, freq)
	}
	writeJSON(w, http.StatusOK, req)
}

func (a *App) putPushTokenHandler(w http.ResponseWriter, r *http.Request) {
	u, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	var req struct {
		Token string `json:"token"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Token == "" {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "token is required")
		return
	}
	if err := a.Store.UpdateProfile(r.Context(), u.UID, store.ProfilePatch{PushToken: &req.Token}); err != nil {
		WriteJSONError(w, http.StatusBadGateway, "store_error", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getBellHandler reads and clears the one-shot "new delivery" flag.
func (a *App) getBellHandler(w http.ResponseWriter, r *http.Request) {
	u, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{
		"new_delivery": a.Service.ConsumeBell(r.Context(), u.UID),
	})
}

// --- ops ---

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) metricsHandler(w http.ResponseWriter, r *http.Request) {
	m := map[string]any{
		"uptime_sec": time.Since(a.started).Seconds(),
	}
	if a.Dispatcher != nil {
		enq, sent, failed, backlog := a.Dispatcher.Metrics()
		m["push_enqueued"] = enq
		m["push_sent"] = sent
		m["push_failed"] = failed
		m["push_backlog"] = backlog
	}
	if a.Reminders != nil {
		m["reminder_timers"] = a.Reminders.Active()
	}
	writeJSON(w, http.StatusOK, m)
}

func (a *App) openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(httpopenapi.YAML)
}

func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
	_, _ = w.Write([]byte(html))
}
