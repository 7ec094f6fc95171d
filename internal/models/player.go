package models

import (
	"time"
)

// Player is a user who can redeem kits
type Player struct {
	// ID is the Discord user ID of the player
	ID string

	// Name is the account name of the player
	Name string

	// DisplayName is the name shown for the player, if different from Name
	DisplayName string

	// Inventory holds the player's items
	Inventory *Inventory

	// FirstSeen is when the player was first recorded
	FirstSeen time.Time
}

// VisibleName returns the display name, falling back to the account name
func (p *Player) VisibleName() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Name
}
