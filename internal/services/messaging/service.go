package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/KirkDiggler/kits/internal/models"
	"github.com/KirkDiggler/kits/internal/services/catalog"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.rand.Intn(len(messages))]
}

// GetRedeemResultMessage describes a redemption result
func (s *service) GetRedeemResultMessage(ctx context.Context, input *GetRedeemResultMessageInput) (*GetRedeemResultMessageOutput, error) {
	if input == nil || input.Result == nil {
		return nil, errors.New("input and result cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	result := input.Result
	kit := input.KitName
	var message string

	switch result.Status {
	case models.RedeemStatusSuccess:
		tone = ToneCelebration
		message = fmt.Sprintf(s.pick([]string{
			"%s, the %s kit is yours! 🎁",
			"Fresh loot for %s! The %s kit has landed in your inventory.",
			"%s unboxed the %s kit. Spend it wisely.",
		}), input.PlayerName, kit)

	case models.RedeemStatusPartialSuccess:
		message = fmt.Sprintf("You got the %s kit, but %s did not fit and %s dropped on the floor.",
			kit, pluralItems(len(result.RejectedItems)), itPronoun(len(result.RejectedItems)))

	case models.RedeemStatusAlreadyRedeemedOneTime:
		message = fmt.Sprintf(s.pick([]string{
			"The %s kit is a one-time deal, and you already had your time.",
			"Nice try! The %s kit can only be redeemed once.",
		}), kit)

	case models.RedeemStatusCooldownNotExpired:
		if result.NextCooldownExpiry != nil {
			message = fmt.Sprintf("The %s kit is on cooldown. Try again <t:%d:R>.", kit, result.NextCooldownExpiry.Unix())
		} else {
			message = fmt.Sprintf("The %s kit is on cooldown.", kit)
		}

	case models.RedeemStatusNoSpace:
		message = fmt.Sprintf("Your inventory is too full for the %s kit; %s would not fit. Nothing was taken.",
			kit, pluralItems(len(result.RejectedItems)))

	case models.RedeemStatusPreEventCancelled:
		if result.CancelMessage != nil && *result.CancelMessage != "" {
			message = *result.CancelMessage
		} else {
			message = fmt.Sprintf("Redeeming the %s kit was blocked.", kit)
		}

	default:
		tone = ToneNeutral
		message = fmt.Sprintf("Something went wrong redeeming the %s kit. Nothing was granted.", kit)
	}

	return &GetRedeemResultMessageOutput{
		Message: message,
		Tone:    tone,
	}, nil
}

// GetKitListMessage lists kit names
func (s *service) GetKitListMessage(ctx context.Context, input *GetKitListMessageInput) (*GetKitListMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.KitNames) == 0 {
		return &GetKitListMessageOutput{Message: "There are no kits to redeem yet."}, nil
	}

	return &GetKitListMessageOutput{
		Message: fmt.Sprintf("Available kits: %s", strings.Join(input.KitNames, ", ")),
	}, nil
}

// GetErrorMessage translates known errors into friendly text
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input and error cannot be nil")
	}

	var message string
	switch {
	case errors.Is(input.Err, catalog.ErrKitNotFound):
		message = "I couldn't find a kit with that name."
	case errors.Is(input.Err, catalog.ErrKitAlreadyExists):
		message = "A kit with that name already exists."
	case errors.Is(input.Err, catalog.ErrKitNameTaken):
		message = "Another kit already uses that name."
	case errors.Is(input.Err, catalog.ErrInvalidKitName):
		message = "Kit names can use letters, numbers, dashes and underscores, up to 32 characters."
	default:
		message = s.pick([]string{
			"Something went wrong. Please try again.",
			"That didn't work. Give it another go in a moment.",
		})
	}

	return &GetErrorMessageOutput{Message: message}, nil
}

func pluralItems(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}

func itPronoun(n int) string {
	if n == 1 {
		return "it"
	}
	return "they"
}
