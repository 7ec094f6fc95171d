package redemption

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/kits/internal/repositories/redemption Repository

import (
	"context"
)

// Repository defines the interface for per-player redemption persistence
type Repository interface {
	// GetRedemptions retrieves every kit a player has redeemed and when
	GetRedemptions(ctx context.Context, input *GetRedemptionsInput) (*GetRedemptionsOutput, error)

	// SetRedemptions merges redemption times into a player's record
	SetRedemptions(ctx context.Context, input *SetRedemptionsInput) error

	// ClearRedemption forgets a player's redemption of a kit
	ClearRedemption(ctx context.Context, input *ClearRedemptionInput) error
}
