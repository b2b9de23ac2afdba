// Package notify implements the notification collaborator: delivery
// pushes to the device that placed an order, and scheduled order
// reminders. Everything here is fire-and-forget; a failed send is
// logged and dropped, never surfaced to the flow that triggered it.
package notify

import (
	"context"
	"fmt"
)

// Message is one push notification.
type Message struct {
	Token string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Sound string `json:"sound"`
}

// Sender delivers one message to one device token.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

// DeliveryMessage builds the delivery-confirmation push for an order.
// The body references the order by the last five characters of its id,
// matching what the receipt screen shows.
func DeliveryMessage(token, orderID string) Message {
	short := orderID
	if len(short) > 5 {
		short = short[len(short)-5:]
	}
	return Message{
		Token: token,
		Title: "Order Delivered",
		Body:  fmt.Sprintf("Your Junk Mail order #%s has been delivered!", short),
		Sound: "default",
	}
}

// ReminderMessage builds the periodic order reminder push.
func ReminderMessage(token string) Message {
	return Message{
		Token: token,
		Title: "Reminder",
		Body:  "Don't forget to place your order!",
		Sound: "default",
	}
}
