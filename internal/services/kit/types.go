package kit

import (
	"context"
	"time"

	"github.com/KirkDiggler/kits/internal/common/clock"
	"github.com/KirkDiggler/kits/internal/common/uuid"
	"github.com/KirkDiggler/kits/internal/models"
	"github.com/KirkDiggler/kits/internal/services/command"
	"github.com/KirkDiggler/kits/internal/services/eligibility"
	"github.com/KirkDiggler/kits/internal/services/events"
	"github.com/KirkDiggler/kits/internal/services/grant"
	"github.com/KirkDiggler/kits/internal/services/ledger"
	"github.com/sirupsen/logrus"
)

// EligibilityChecker applies one-time and cooldown policies
type EligibilityChecker interface {
	Evaluate(ctx context.Context, kit *models.Kit, playerID string, lastRedeemed *time.Time, checkOneTime, checkCooldown bool) *eligibility.Failure
	GetNextUseTime(ctx context.Context, kit *models.Kit, playerID string, lastRedeemed *time.Time) *time.Time
}

// Granter resolves kit items and puts them in an inventory
type Granter interface {
	Resolve(kit *models.Kit, player *models.Player) []*models.ItemStack
	Apply(inv grant.Inventory, items []*models.ItemStack, mustGetAll, firstJoin bool) *grant.Outcome
}

// EventDispatcher runs the redemption hooks
type EventDispatcher interface {
	PreRedeem(ctx context.Context, event *events.PreRedeemEvent) *events.PreRedeemResult
	PostRedeem(ctx context.Context, event *events.RedeemEvent)
	FailedRedeem(ctx context.Context, event *events.RedeemEvent)
}

// Config holds configuration for the kit service
type Config struct {
	Ledger      ledger.Ledger
	Eligibility EligibilityChecker
	Granter     Granter
	Events      EventDispatcher
	Commands    command.Executor
	Clock       clock.Clock
	UUID        uuid.UUID
	Logger      logrus.FieldLogger

	// MustGetAll is used when a redemption does not say otherwise
	MustGetAll bool
}

// RedeemKitInput contains the parameters of a redemption
type RedeemKitInput struct {
	Kit    *models.Kit
	Player *models.Player

	// CheckOneTime enforces the one-time policy
	CheckOneTime bool

	// CheckCooldown enforces the cooldown and records the redemption time
	CheckCooldown bool

	// MustGetAll overrides the configured all-or-nothing policy when set
	MustGetAll *bool

	// FirstJoin marks a redemption made when the player first joined;
	// it is never all-or-nothing
	FirstJoin bool
}

// QueryInput names a kit and a player
type QueryInput struct {
	Kit      *models.Kit
	PlayerID string
}
