package redemption

import "github.com/KirkDiggler/kits/internal/models"

// GetRedemptionsInput contains parameters for retrieving a player's redemptions
type GetRedemptionsInput struct {
	PlayerID string
}

// GetRedemptionsOutput contains a player's redemptions
type GetRedemptionsOutput struct {
	Record models.RedemptionRecord
}

// SetRedemptionsInput contains the redemption times to merge into a player's record
type SetRedemptionsInput struct {
	PlayerID string
	Record   models.RedemptionRecord
}

// ClearRedemptionInput contains parameters for forgetting a single redemption
type ClearRedemptionInput struct {
	PlayerID string
	KitName  string
}
