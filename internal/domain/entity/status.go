package entity

import (
	"strings"
	"time"
)

// Status is the stored status flag as the backend keeps it.
type Status string

const (
	StatusActive  Status = "active"
	StatusHide    Status = "hide"
	StatusExpired Status = "expired"
)

// Effective is the display-time classification derived from the stored
// status and the expiry date, as opposed to the raw stored value.
type Effective string

const (
	EffectiveActive  Effective = "active"
	EffectiveExpired Effective = "expired"
	EffectiveHidden  Effective = "hidden"
)

// EffectiveStatus classifies an entity for display. An explicit terminal
// status always wins over time-based derivation; otherwise an elapsed expiry
// turns the entity expired. A missing or unparseable expiry never expires.
func EffectiveStatus(stored Status, expiry string, now time.Time) Effective {
	switch stored {
	case StatusHide:
		return EffectiveHidden
	case StatusExpired:
		return EffectiveExpired
	}

	if exp, ok := ParseExpiry(expiry); ok && exp.Before(now) {
		return EffectiveExpired
	}
	return EffectiveActive
}

// Label capitalizes the effective status for table badges.
func (e Effective) Label() string {
	if e == "" {
		return ""
	}
	return strings.ToUpper(string(e[:1])) + string(e[1:])
}

var expiryFormats = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseExpiry accepts the expiry formats the backend has been seen to send:
// full ISO timestamps and bare dates.
func ParseExpiry(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range expiryFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
