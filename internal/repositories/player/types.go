package player

import (
	"time"

	"github.com/KirkDiggler/kits/internal/models"
)

// SavePlayerInput contains parameters for saving a player
type SavePlayerInput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID string
}

// MarkJoinedInput contains parameters for recording a join
type MarkJoinedInput struct {
	PlayerID string
	JoinedAt time.Time
}

// MarkJoinedOutput contains the result of recording a join
type MarkJoinedOutput struct {
	// FirstJoin is true only the first time a player is marked
	FirstJoin bool
}
