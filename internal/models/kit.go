package models

import (
	"strings"
	"time"
)

// PlayerPlaceholder is replaced by the recipient's name in kit commands
const PlayerPlaceholder = "{{player}}"

// Kit is a named bundle of items and commands a player can redeem
type Kit struct {
	// Name is the unique, case-insensitive name of the kit
	Name string

	// Stacks are the item templates granted on redemption, in order
	Stacks []*ItemStack

	// Commands are run from the console on redemption, in order
	Commands []string

	// Cooldown is the time that must pass between redemptions, if any
	Cooldown *time.Duration

	// OneTime kits can only be redeemed once per player
	OneTime bool

	// Hidden kits are left out of kit listings
	Hidden bool

	// FirstJoin kits are granted when a player joins for the first time
	FirstJoin bool

	// AutoRedeem kits are redeemed automatically whenever a player joins
	AutoRedeem bool

	// Cost is charged by the economy integration; the engine does not deduct it
	Cost float64

	// IgnoresPermission kits can be redeemed without the per-kit permission
	IgnoresPermission bool
}

// NewKit creates an empty kit with the given name
func NewKit(name string) *Kit {
	return &Kit{
		Name:     name,
		Stacks:   []*ItemStack{},
		Commands: []string{},
	}
}

// Key returns the catalog and ledger key for the kit
func (k *Kit) Key() string {
	return KitKey(k.Name)
}

// KitKey normalises a kit name into its catalog and ledger key
func KitKey(name string) string {
	return strings.ToLower(name)
}

// HasCooldown reports whether the kit has a positive cooldown
func (k *Kit) HasCooldown() bool {
	return k.Cooldown != nil && *k.Cooldown > 0
}

// Clone returns a deep copy of the kit
func (k *Kit) Clone() *Kit {
	if k == nil {
		return nil
	}

	clone := *k
	clone.Stacks = CloneStacks(k.Stacks)
	if k.Commands != nil {
		clone.Commands = make([]string, len(k.Commands))
		copy(clone.Commands, k.Commands)
	}
	if k.Cooldown != nil {
		cooldown := *k.Cooldown
		clone.Cooldown = &cooldown
	}

	return &clone
}

// Renamed returns a copy of the kit under a new name
func (k *Kit) Renamed(name string) *Kit {
	clone := k.Clone()
	clone.Name = name
	return clone
}
