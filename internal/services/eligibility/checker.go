// Package eligibility decides whether a player may redeem a kit right now.
package eligibility

import (
	"context"
	"errors"
	"time"

	"github.com/KirkDiggler/kits/internal/common/clock"
	"github.com/KirkDiggler/kits/internal/models"
	"github.com/KirkDiggler/kits/internal/services/permission"
)

// Config holds configuration for the checker
type Config struct {
	Permissions permission.Checker
	Clock       clock.Clock
}

// Failure explains why a redemption is not allowed
type Failure struct {
	// Status is ALREADY_REDEEMED_ONE_TIME or COOLDOWN_NOT_EXPIRED
	Status models.RedeemStatus

	// NextCooldownExpiry is set for COOLDOWN_NOT_EXPIRED
	NextCooldownExpiry *time.Time
}

// Checker applies one-time and cooldown policies
type Checker struct {
	permissions permission.Checker
	clock       clock.Clock
}

// New creates a Checker
func New(cfg *Config) (*Checker, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Permissions == nil {
		return nil, errors.New("permission checker cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &Checker{
		permissions: cfg.Permissions,
		clock:       cfg.Clock,
	}, nil
}

// CheckOneTime reports whether the one-time policy allows another redemption
func (c *Checker) CheckOneTime(ctx context.Context, kit *models.Kit, playerID string) bool {
	return !kit.OneTime || c.permissions.HasPermission(ctx, playerID, permission.KitExemptOneTime)
}

// GetNextUseTime returns when the kit comes off cooldown, or nil when it can
// be redeemed now.
func (c *Checker) GetNextUseTime(ctx context.Context, kit *models.Kit, playerID string, lastRedeemed *time.Time) *time.Time {
	if lastRedeemed == nil || !kit.HasCooldown() {
		return nil
	}

	if c.permissions.HasPermission(ctx, playerID, permission.KitExemptCooldown) {
		return nil
	}

	next := lastRedeemed.Add(*kit.Cooldown)
	if !next.After(c.clock.Now()) {
		return nil
	}

	return &next
}

// Evaluate applies the requested policies. Nothing is checked for a kit the
// player has never redeemed. It returns nil when the redemption may proceed.
func (c *Checker) Evaluate(ctx context.Context, kit *models.Kit, playerID string, lastRedeemed *time.Time, checkOneTime, checkCooldown bool) *Failure {
	if lastRedeemed == nil {
		return nil
	}

	if checkOneTime && !c.CheckOneTime(ctx, kit, playerID) {
		return &Failure{Status: models.RedeemStatusAlreadyRedeemedOneTime}
	}

	if checkCooldown {
		if next := c.GetNextUseTime(ctx, kit, playerID, lastRedeemed); next != nil {
			return &Failure{
				Status:             models.RedeemStatusCooldownNotExpired,
				NextCooldownExpiry: next,
			}
		}
	}

	return nil
}
