package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/viscontie/junk-mail-service/internal/cart"
	"github.com/viscontie/junk-mail-service/internal/config"
	"github.com/viscontie/junk-mail-service/internal/identity"
	"github.com/viscontie/junk-mail-service/internal/model"
	"github.com/viscontie/junk-mail-service/internal/notify"
	"github.com/viscontie/junk-mail-service/internal/orders"
	"github.com/viscontie/junk-mail-service/internal/prefs"
	"github.com/viscontie/junk-mail-service/internal/store"
)

type nopSender struct{}

func (nopSender) Send(ctx context.Context, m notify.Message) error { return nil }

func newTestApp(t *testing.T) (*App, http.Handler, *store.Memory) {
	t.Helper()
	st := store.NewMemory()
	ctx := context.Background()
	if err := st.PutProfile(ctx, model.UserProfile{
		UID: "u1", FirstName: "Casey", LastName: "Jones", Email: "cjones@example.edu",
		PushToken: "tok-u1", DeliveryNotifications: true,
	}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	if err := st.PutProfile(ctx, model.UserProfile{
		UID: "swa1", FirstName: "Riley", LastName: "Park", Staff: true,
	}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	resolver := identity.StoreResolver{Store: st}
	ps := prefs.NewMemory()
	svc := orders.NewService(st, resolver, nopSender{}, ps, time.UTC)
	app := NewApp(config.Load(), svc, st, resolver, cart.NewRegistry(), ps, nil, nil)
	return app, NewRouter(app), st
}

func do(t *testing.T, h http.Handler, method, path, uid string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	r := httptest.NewRequest(method, path, &buf)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if uid != "" {
		r.Header.Set("X-User-Id", uid)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cart.Cart {
	t.Helper()
	var v struct {
		Items cart.Cart `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	return v.Items
}

func TestCatalogIsPublic(t *testing.T) {
	_, h, _ := newTestApp(t)
	w := do(t, h, http.MethodGet, "/catalog", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w = do(t, h, http.MethodGet, "/catalog?category=Menstrual", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCartRequiresUser(t *testing.T) {
	_, h, _ := newTestApp(t)
	w := do(t, h, http.MethodGet, "/cart", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	_, h, _ := newTestApp(t)
	w := do(t, h, http.MethodPost, "/cart/items", "u1", map[string]string{"name": "Mystery Item"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCartAddStopsAtLimit(t *testing.T) {
	_, h, _ := newTestApp(t)
	for i := 0; i < 4; i++ {
		w := do(t, h, http.MethodPost, "/cart/items", "u1", map[string]string{"name": "Plan B"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if i == 3 {
			if c := decodeCart(t, w); c["Plan B"] != 3 {
				t.Fatalf("Plan B must cap at 3, got %d", c["Plan B"])
			}
		}
	}
}

func TestCartSetQuantityOverLimitIsSilentNoop(t *testing.T) {
	_, h, _ := newTestApp(t)
	do(t, h, http.MethodPost, "/cart/items", "u1", map[string]string{"name": "Lubricant"})
	w := do(t, h, http.MethodPut, "/cart/items/Lubricant", "u1", map[string]int{"qty": 50})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if c := decodeCart(t, w); c["Lubricant"] != 1 {
		t.Fatalf("over-limit set must leave cart unchanged, got %d", c["Lubricant"])
	}
}

func TestCartSetQuantityZeroRemoves(t *testing.T) {
	_, h, _ := newTestApp(t)
	do(t, h, http.MethodPost, "/cart/items", "u1", map[string]string{"name": "Lubricant"})
	w := do(t, h, http.MethodPut, "/cart/items/Lubricant", "u1", map[string]int{"qty": 0})
	if c := decodeCart(t, w); len(c) != 0 {
		t.Fatalf("expected empty cart, got %+v", c)
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	_, h, _ := newTestApp(t)
	w := do(t, h, http.MethodPost, "/orders", "u1", map[string]string{"notes": ""})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSubmitClearsCartAndPersists(t *testing.T) {
	app, h, _ := newTestApp(t)
	do(t, h, http.MethodPost, "/cart/items", "u1", map[string]string{"name": "Lubed Reg Condom"})
	do(t, h, http.MethodPost, "/cart/items", "u1", map[string]string{"name": "Lubed Reg Condom"})

	w := do(t, h, http.MethodPost, "/orders", "u1", map[string]string{"notes": "leave in box"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var o model.Order
	if err := json.Unmarshal(w.Body.Bytes(), &o); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if o.Status != model.StatusPending || o.Notes != "leave in box" {
		t.Fatalf("unexpected order: %+v", o)
	}
	if len(o.Items) != 1 || o.Items[0] != (model.OrderItem{Name: "Lubed Reg Condom", Qty: 2}) {
		t.Fatalf("unexpected items: %+v", o.Items)
	}
	if !app.Carts.Get("u1").Empty() {
		t.Fatalf("cart must be cleared after successful submit")
	}
}

func TestStaffEndpointsRejectNonStaff(t *testing.T) {
	_, h, _ := newTestApp(t)
	for _, req := range []struct{ method, path string }{
		{http.MethodGet, "/orders"},
		{http.MethodDelete, "/orders"},
		{http.MethodGet, "/stats"},
	} {
		w := do(t, h, req.method, req.path, "u1", nil)
		if w.Code != http.StatusForbidden {
			t.Fatalf("%s %s: expected 403, got %d", req.method, req.path, w.Code)
		}
	}
}

func TestCompleteOrderFlow(t *testing.T) {
	_, h, _ := newTestApp(t)
	do(t, h, http.MethodPost, "/cart/items", "u1", map[string]string{"name": "Lubricant"})
	w := do(t, h, http.MethodPost, "/orders", "u1", map[string]string{"notes": ""})
	var o model.Order
	if err := json.Unmarshal(w.Body.Bytes(), &o); err != nil {
		t.Fatalf("decode order: %v", err)
	}

	w = do(t, h, http.MethodPost, "/orders/"+o.ID+"/complete", "swa1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var done model.Order
	if err := json.Unmarshal(w.Body.Bytes(), &done); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if done.Status != model.StatusCompleted || done.DeliveredBy != "Riley Park" {
		t.Fatalf("unexpected completed order: %+v", done)
	}

	// Bell raised for the ordering user, and one-shot.
	w = do(t, h, http.MethodGet, "/notifications/bell", "u1", nil)
	var bell map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &bell); err != nil {
		t.Fatalf("decode bell: %v", err)
	}
	if !bell["new_delivery"] {
		t.Fatalf("expected bell set")
	}
	w = do(t, h, http.MethodGet, "/notifications/bell", "u1", nil)
	_ = json.Unmarshal(w.Body.Bytes(), &bell)
	if bell["new_delivery"] {
		t.Fatalf("bell must clear on read")
	}
}

func TestCompleteUnknownOrder(t *testing.T) {
	_, h, _ := newTestApp(t)
	w := do(t, h, http.MethodPost, "/orders/nope/complete", "swa1", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestReorderRebuildsCart(t *testing.T) {
	_, h, _ := newTestApp(t)
	do(t, h, http.MethodPost, "/cart/items", "u1", map[string]string{"name": "Super Tampon"})
	w := do(t, h, http.MethodPost, "/orders", "u1", map[string]string{"notes": ""})
	var o model.Order
	_ = json.Unmarshal(w.Body.Bytes(), &o)

	w = do(t, h, http.MethodPost, "/cart/reorder", "u1", map[string]string{"order_id": o.ID})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if c := decodeCart(t, w); c["Super Tampon"] != 1 {
		t.Fatalf("expected rebuilt cart, got %+v", c)
	}

	// Another user's order is invisible.
	w = do(t, h, http.MethodPost, "/cart/reorder", "swa1", map[string]string{"order_id": o.ID})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPrefsUpdateSyncsProfile(t *testing.T) {
	_, h, st := newTestApp(t)
	w := do(t, h, http.MethodPut, "/prefs", "u1", prefs.Preferences{
		SaveOrders: true, Notifications: false, Reminder: prefs.Never,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	u, err := st.GetProfile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if u.DeliveryNotifications {
		t.Fatalf("profile delivery toggle must follow preferences")
	}
}

func TestPushTokenRegistration(t *testing.T) {
	_, h, st := newTestApp(t)
	w := do(t, h, http.MethodPut, "/push-token", "u1", map[string]string{"token": "tok-new"})
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	u, _ := st.GetProfile(context.Background(), "u1")
	if u.PushToken != "tok-new" {
		t.Fatalf("token not stored: %+v", u)
	}
}

func TestStatsYearParam(t *testing.T) {
	_, h, _ := newTestApp(t)
	w := do(t, h, http.MethodGet, "/stats?year=abc", "swa1", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	w = do(t, h, http.MethodGet, "/stats?year=2024", "swa1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var s orders.Stats
	if err := json.Unmarshal(w.Body.Bytes(), &s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.Year != 2024 {
		t.Fatalf("unexpected year: %d", s.Year)
	}
}

func TestHealthz(t *testing.T) {
	_, h, _ := newTestApp(t)
	w := do(t, h, http.MethodGet, "/healthz", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
