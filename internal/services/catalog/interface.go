package catalog

//go:generate mockgen -package=mocks -destination=mocks/mock_catalog.go github.com/KirkDiggler/kits/internal/services/catalog Catalog

import (
	"context"

	"github.com/KirkDiggler/kits/internal/models"
)

// Catalog is the registry of redeemable kits. Names are case-insensitive.
type Catalog interface {
	// Load replaces the in-memory catalog with the stored one
	Load(ctx context.Context) error

	// CreateKit adds an empty kit, failing if the name is taken
	CreateKit(ctx context.Context, name string) (*models.Kit, error)

	// RenameKit moves a kit to a new name
	RenameKit(ctx context.Context, oldName, newName string) error

	// RemoveKit deletes a kit and reports whether one was removed
	RemoveKit(ctx context.Context, name string) bool

	// SaveKit stores a kit, adding or replacing it
	SaveKit(ctx context.Context, kit *models.Kit) error

	// GetKit returns a copy of the named kit
	GetKit(name string) (*models.Kit, bool)

	// KitNames lists kit names; hidden and first-join kits only when showHidden
	KitNames(showHidden bool) []string

	// FirstJoinKits returns the kits granted on a player's first join
	FirstJoinKits() []*models.Kit

	// AutoRedeemable returns the free kits redeemed whenever a player joins
	AutoRedeemable() []*models.Kit
}
