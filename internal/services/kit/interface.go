package kit

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/kits/internal/services/kit Service

import (
	"context"
	"time"

	"github.com/KirkDiggler/kits/internal/models"
)

// Service defines the interface for kit redemption
type Service interface {
	// RedeemKit runs a full redemption of a kit for a player. Every outcome
	// is reported in the result; the error is only for invalid input.
	RedeemKit(ctx context.Context, input *RedeemKitInput) (*models.RedeemResult, error)

	// IsRedeemable reports whether the kit could be redeemed now, ignoring exemptions from one-time kits
	IsRedeemable(ctx context.Context, input *QueryInput) (bool, error)

	// HasPreviouslyRedeemed reports whether the player has a recorded redemption of the kit
	HasPreviouslyRedeemed(ctx context.Context, input *QueryInput) (bool, error)

	// GetCooldownExpiry returns when the kit's cooldown ends for the player, or nil
	GetCooldownExpiry(ctx context.Context, input *QueryInput) (*time.Time, error)

	// ResetRedemption forgets the player's last redemption of the kit
	ResetRedemption(ctx context.Context, input *QueryInput) error
}
