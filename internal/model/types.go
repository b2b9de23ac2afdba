// Package model defines domain types used by the service.
package model

import "time"

// OrderStatus is the lifecycle state of a persisted order.
type OrderStatus string

const (
	// StatusPending is the state of every freshly submitted order.
	StatusPending OrderStatus = "pending"
	// StatusCompleted is the terminal state set by staff fulfillment.
	StatusCompleted OrderStatus = "completed"
)

// OrderItem is a single product line on an order.
type OrderItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// Order represents a submitted delivery request. The id is assigned by
// the document store on creation. Only Status and DeliveredBy mutate
// after creation; everything else is written once.
type Order struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	UserName    string      `json:"user_name"`
	UserEmail   string      `json:"user_email"`
	Items       []OrderItem `json:"items"`
	Notes       string      `json:"notes,omitempty"`
	PushToken   string      `json:"push_token,omitempty"`
	Status      OrderStatus `json:"status"`
	DeliveredBy string      `json:"delivered_by,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Completed reports whether the order has been fulfilled.
func (o Order) Completed() bool { return o.Status == StatusCompleted }

// UserProfile is the document-store record for an account. The service
// references profiles by id; it never owns them.
type UserProfile struct {
	UID       string `json:"uid"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	PushToken string `json:"push_token,omitempty"`
	// DeliveryNotifications gates the delivery push on fulfillment.
	DeliveryNotifications bool `json:"delivery_notifications"`
	// Notif is a one-shot "new delivery" bell flag, set on fulfillment
	// and cleared the next time the owner reads it.
	Notif bool `json:"notif"`
	// Staff marks fulfillment actors.
	Staff bool `json:"staff"`
}

// DisplayName joins the profile's name fields for display and audit use.
func (u UserProfile) DisplayName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
