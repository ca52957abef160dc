package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestEffectiveStatusHideWins(t *testing.T) {
	// Explicit hide beats any expiry, past or future.
	assert.Equal(t, EffectiveHidden, EffectiveStatus(StatusHide, "2020-01-01", now))
	assert.Equal(t, EffectiveHidden, EffectiveStatus(StatusHide, "2099-01-01", now))
	assert.Equal(t, EffectiveHidden, EffectiveStatus(StatusHide, "", now))
}

func TestEffectiveStatusExplicitExpired(t *testing.T) {
	assert.Equal(t, EffectiveExpired, EffectiveStatus(StatusExpired, "", now))
	assert.Equal(t, EffectiveExpired, EffectiveStatus(StatusExpired, "2099-01-01", now))
}

func TestEffectiveStatusTimeDerivation(t *testing.T) {
	assert.Equal(t, EffectiveExpired, EffectiveStatus(StatusActive, "2020-01-01", now))
	assert.Equal(t, EffectiveActive, EffectiveStatus(StatusActive, "2099-01-01", now))
	assert.Equal(t, EffectiveActive, EffectiveStatus(StatusActive, "", now))
}

func TestEffectiveStatusUnparseableExpiryNeverExpires(t *testing.T) {
	assert.Equal(t, EffectiveActive, EffectiveStatus(StatusActive, "not-a-date", now))
}

func TestEffectiveStatusAcceptsISOTimestamps(t *testing.T) {
	assert.Equal(t, EffectiveExpired, EffectiveStatus(StatusActive, "2020-01-01T00:00:00Z", now))
	assert.Equal(t, EffectiveExpired, EffectiveStatus(StatusActive, "2020-01-01T00:00:00.000Z", now))
}

func TestEffectiveLabel(t *testing.T) {
	assert.Equal(t, "Active", EffectiveActive.Label())
	assert.Equal(t, "Expired", EffectiveExpired.Label())
	assert.Equal(t, "Hidden", EffectiveHidden.Label())
}

func TestAnnouncementEffectiveStatus(t *testing.T) {
	a := Announcement{Status: StatusActive, Expiry: "2020-01-01"}
	assert.Equal(t, EffectiveExpired, a.EffectiveStatus(now))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "January 1, 2020", FormatDate("2020-01-01"))
	assert.Equal(t, "-", FormatDate(""))
	assert.Equal(t, "-", FormatDate("garbage"))
}

func TestFormatDateTime(t *testing.T) {
	created := time.Date(2025, 3, 7, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "March 7, 2025, 2:05 PM", FormatDateTime(created))
	assert.Equal(t, "-", FormatDateTime(time.Time{}))
}

func TestMinExpiryDate(t *testing.T) {
	assert.Equal(t, "2025-06-16", MinExpiryDate(now))

	// Month rollover.
	endOfMonth := time.Date(2025, 1, 31, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-02-01", MinExpiryDate(endOfMonth))
}
