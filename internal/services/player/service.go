// Package player loads and stores the players kits are granted to.
package player

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/kits/internal/services/player Service

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/kits/internal/common/clock"
	"github.com/KirkDiggler/kits/internal/models"
	playerRepo "github.com/KirkDiggler/kits/internal/repositories/player"
)

// Service defines the interface for player operations
type Service interface {
	// LoadOrCreate returns the stored player, creating one with an empty
	// inventory on first sight. Names are refreshed from the input.
	LoadOrCreate(ctx context.Context, input *LoadOrCreateInput) (*models.Player, error)

	// Save stores the player and their inventory
	Save(ctx context.Context, player *models.Player) error
}

// LoadOrCreateInput identifies a player
type LoadOrCreateInput struct {
	PlayerID    string
	Name        string
	DisplayName string
}

// Config holds configuration for the player service
type Config struct {
	Repository playerRepo.Repository
	Clock      clock.Clock

	// InventorySize is the slot count of new inventories
	InventorySize int
}

type service struct {
	repo          playerRepo.Repository
	clock         clock.Clock
	inventorySize int
}

// New creates a player service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Repository == nil {
		return nil, errors.New("player repository cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &service{
		repo:          cfg.Repository,
		clock:         cfg.Clock,
		inventorySize: cfg.InventorySize,
	}, nil
}

// LoadOrCreate returns the stored player or a new one
func (s *service) LoadOrCreate(ctx context.Context, input *LoadOrCreateInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	p, err := s.repo.GetPlayer(ctx, &playerRepo.GetPlayerInput{PlayerID: input.PlayerID})
	if err != nil && !errors.Is(err, playerRepo.ErrPlayerNotFound) {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if p == nil {
		p = &models.Player{
			ID:        input.PlayerID,
			FirstSeen: s.clock.Now(),
		}
	}

	if p.Inventory == nil {
		p.Inventory = models.NewInventory(s.inventorySize)
	}

	if input.Name != "" {
		p.Name = input.Name
	}
	if input.DisplayName != "" {
		p.DisplayName = input.DisplayName
	}

	return p, nil
}

// Save stores the player
func (s *service) Save(ctx context.Context, p *models.Player) error {
	if p == nil {
		return errors.New("player cannot be nil")
	}

	if err := s.repo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: p}); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}
