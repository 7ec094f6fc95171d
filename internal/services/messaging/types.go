package messaging

import (
	"github.com/KirkDiggler/kits/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Seed fixes message selection; zero seeds from the current time
	Seed int64
}

// GetRedeemResultMessageInput contains parameters for a redemption message
type GetRedeemResultMessageInput struct {
	KitName    string
	PlayerName string
	Result     *models.RedeemResult

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetRedeemResultMessageOutput contains the redemption message
type GetRedeemResultMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetKitListMessageInput contains parameters for a kit listing
type GetKitListMessageInput struct {
	KitNames []string
}

// GetKitListMessageOutput contains the kit listing
type GetKitListMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for an error message
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains the error message
type GetErrorMessageOutput struct {
	Message string
}
