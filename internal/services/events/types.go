package events

import (
	"context"
	"time"

	"github.com/KirkDiggler/kits/internal/models"
)

// PreRedeemEvent is handed to pre-redeem hooks before anything is granted
type PreRedeemEvent struct {
	RedemptionID string
	Kit          *models.Kit
	Player       *models.Player

	// LastRedeemed is when the player last redeemed the kit, if ever
	LastRedeemed *time.Time

	// OriginalStacks and OriginalCommands are what the kit would grant
	OriginalStacks   []*models.ItemStack
	OriginalCommands []string

	// Stacks and Commands hold overrides from earlier hooks; nil means none
	Stacks   []*models.ItemStack
	Commands []string
}

// StacksToRedeem returns the overridden stacks, or the original ones
func (e *PreRedeemEvent) StacksToRedeem() []*models.ItemStack {
	if e.Stacks != nil {
		return e.Stacks
	}
	return e.OriginalStacks
}

// CommandsToExecute returns the overridden commands, or the original ones
func (e *PreRedeemEvent) CommandsToExecute() []string {
	if e.Commands != nil {
		return e.Commands
	}
	return e.OriginalCommands
}

// PreRedeemDecision is what a hook wants done with a redemption. A nil
// decision lets the redemption through unchanged.
type PreRedeemDecision struct {
	// Cancel vetoes the redemption
	Cancel bool

	// Message is shown to the player when cancelled
	Message *string

	// Stacks replaces the items to grant when non-nil
	Stacks []*models.ItemStack

	// Commands replaces the commands to run when non-nil
	Commands []string
}

// PreRedeemResult is the combined answer of every pre-redeem hook
type PreRedeemResult struct {
	Cancelled     bool
	CancelMessage *string

	// Stacks and Commands are the overrides in force, nil when none
	Stacks   []*models.ItemStack
	Commands []string
}

// RedeemEvent describes a finished redemption, successful or not
type RedeemEvent struct {
	RedemptionID string
	Kit          *models.Kit
	Player       *models.Player
	LastRedeemed *time.Time

	OriginalStacks   []*models.ItemStack
	OriginalCommands []string

	// Stacks and Commands are hook overrides, nil when none were known
	Stacks   []*models.ItemStack
	Commands []string

	// Status is the outcome of the redemption
	Status models.RedeemStatus

	// Rejected holds the items that did not fit, if any
	Rejected []*models.ItemStack
}

// PreRedeemHook may veto a redemption or change what it grants
type PreRedeemHook func(ctx context.Context, event *PreRedeemEvent) *PreRedeemDecision

// Listener is told about finished redemptions
type Listener func(ctx context.Context, event *RedeemEvent)
