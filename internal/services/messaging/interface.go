package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/kits/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetRedeemResultMessage returns the message shown to a player after a redemption
	GetRedeemResultMessage(ctx context.Context, input *GetRedeemResultMessageInput) (*GetRedeemResultMessageOutput, error)

	// GetKitListMessage returns the message listing the kits a player can see
	GetKitListMessage(ctx context.Context, input *GetKitListMessageInput) (*GetKitListMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
