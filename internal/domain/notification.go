package domain

import "time"

// NotificationType classifies inbox notifications
type NotificationType string

const (
	NotificationTypeSystem         NotificationType = "SYSTEM"
	NotificationTypePromotion      NotificationType = "PROMOTION"
	NotificationTypeBooking        NotificationType = "BOOKING"
	NotificationTypePaymentSuccess NotificationType = "PAYMENT_SUCCESS"
)

// IsValid checks if the type is a valid NotificationType
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeSystem, NotificationTypePromotion,
		NotificationTypeBooking, NotificationTypePaymentSuccess:
		return true
	}
	return false
}

// String returns the string representation of NotificationType
func (t NotificationType) String() string {
	return string(t)
}

// Notification is one inbox item. The read flag is mutated
// optimistically and then confirmed via the API.
type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
