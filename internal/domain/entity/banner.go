package entity

import "time"

const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type Banner struct {
	ID         string    `json:"_id"`
	URL        string    `json:"url"`
	Alt        string    `json:"alt,omitempty"`
	Status     Status    `json:"status"`
	Expiry     string    `json:"expiry,omitempty"`
	Device     string    `json:"device"`
	Theme      string    `json:"theme"`
	UploadedBy string    `json:"uploadedBy,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (b Banner) EffectiveStatus(now time.Time) Effective {
	return EffectiveStatus(b.Status, b.Expiry, now)
}
