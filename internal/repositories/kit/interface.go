package kit

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/kits/internal/repositories/kit Repository

import (
	"context"
)

// Repository defines the key-value contract for kit catalog persistence.
// Keys are lowercased kit names.
type Repository interface {
	// GetKits retrieves every stored kit
	GetKits(ctx context.Context, input *GetKitsInput) (*GetKitsOutput, error)

	// SaveKit stores a kit under its lowercased name, replacing any existing entry
	SaveKit(ctx context.Context, input *SaveKitInput) error

	// DeleteKit removes a kit by name
	DeleteKit(ctx context.Context, input *DeleteKitInput) (*DeleteKitOutput, error)
}
