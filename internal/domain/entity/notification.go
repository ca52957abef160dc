package entity

import "time"

// MaxNotificationChars caps the notification message length.
const MaxNotificationChars = 120

type Notification struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Status    Status    `json:"status"`
	Expiry    string    `json:"expiry,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (n Notification) EffectiveStatus(now time.Time) Effective {
	return EffectiveStatus(n.Status, n.Expiry, now)
}
