package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/kits/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/kits/internal/models"
)

// Repository defines the interface for player data persistence
type Repository interface {
	// SavePlayer persists a player and their inventory
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// MarkJoined records that a player has joined, reporting whether this was their first time
	MarkJoined(ctx context.Context, input *MarkJoinedInput) (*MarkJoinedOutput, error)
}
