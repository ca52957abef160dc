package entity

import "time"

type Announcement struct {
	ID        string    `json:"_id"`
	Desc      string    `json:"desc"`
	Status    Status    `json:"status"`
	Expiry    string    `json:"expiry,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a Announcement) EffectiveStatus(now time.Time) Effective {
	return EffectiveStatus(a.Status, a.Expiry, now)
}
