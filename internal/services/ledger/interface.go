package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_ledger.go github.com/KirkDiggler/kits/internal/services/ledger Ledger

import (
	"context"
	"time"

	"github.com/KirkDiggler/kits/internal/models"
)

// Ledger remembers when each player last redeemed each kit
type Ledger interface {
	// Get returns a copy of the player's redemption record, loading it on first use
	Get(ctx context.Context, playerID string) (models.RedemptionRecord, error)

	// Set records a redemption. The cached record is updated before Set
	// returns; the write to storage happens in the background.
	Set(ctx context.Context, playerID, kitName string, at time.Time)

	// Clear forgets a redemption, in the cache and in storage
	Clear(ctx context.Context, playerID, kitName string) error

	// Flush waits for every background write started so far
	Flush()

	// Evict drops the cached record of a player whose session ended
	Evict(playerID string)
}
