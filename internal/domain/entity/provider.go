package entity

import "time"

// Provider is a game provider row. Order defines the portal's display and
// consumption order and must stay a contiguous permutation of [0, n) across
// all providers.
type Provider struct {
	ID         string    `json:"_id"`
	ProviderID string    `json:"provider_id"`
	Name       string    `json:"name"`
	Directory  string    `json:"directory"`
	Order      int       `json:"order"`
	DarkLogo   string    `json:"darkLogo,omitempty"`
	LightLogo  string    `json:"lightLogo,omitempty"`
	Image      string    `json:"image,omitempty"`
	NewGame    bool      `json:"newGame"`
	TopGame    bool      `json:"topGame"`
	Hidden     bool      `json:"hidden"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Provider flag names accepted by the field-level mutator.
const (
	ProviderFlagNew    = "newGame"
	ProviderFlagTop    = "topGame"
	ProviderFlagHidden = "hidden"
)
