package kit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/kits/internal/common/clock"
	"github.com/KirkDiggler/kits/internal/common/logging"
	"github.com/KirkDiggler/kits/internal/common/uuid"
	"github.com/KirkDiggler/kits/internal/models"
	"github.com/KirkDiggler/kits/internal/services/command"
	"github.com/KirkDiggler/kits/internal/services/events"
	"github.com/KirkDiggler/kits/internal/services/ledger"
	"github.com/sirupsen/logrus"
)

type service struct {
	ledger      ledger.Ledger
	eligibility EligibilityChecker
	granter     Granter
	events      EventDispatcher
	commands    command.Executor
	clock       clock.Clock
	uuid        uuid.UUID
	logger      logrus.FieldLogger
	mustGetAll  bool
}

// New creates a new kit service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Ledger == nil {
		return nil, ErrNilLedger
	}

	if cfg.Eligibility == nil {
		return nil, ErrNilEligibility
	}

	if cfg.Granter == nil {
		return nil, ErrNilGranter
	}

	if cfg.Events == nil {
		return nil, ErrNilEvents
	}

	if cfg.Commands == nil {
		return nil, ErrNilCommands
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		ledger:      cfg.Ledger,
		eligibility: cfg.Eligibility,
		granter:     cfg.Granter,
		events:      cfg.Events,
		commands:    cfg.Commands,
		clock:       cfg.Clock,
		uuid:        cfg.UUID,
		logger:      logging.OrDefault(cfg.Logger),
		mustGetAll:  cfg.MustGetAll,
	}, nil
}

// redemption carries what is known about one RedeemKit call
type redemption struct {
	id           string
	kit          *models.Kit
	player       *models.Player
	lastRedeemed *time.Time
	stacks       []*models.ItemStack
	commands     []string

	// overrides from pre-redeem hooks, nil when none
	stackOverride   []*models.ItemStack
	commandOverride []string
}

func (r *redemption) event(status models.RedeemStatus, rejected []*models.ItemStack) *events.RedeemEvent {
	return &events.RedeemEvent{
		RedemptionID:     r.id,
		Kit:              r.kit,
		Player:           r.player,
		LastRedeemed:     r.lastRedeemed,
		OriginalStacks:   r.stacks,
		OriginalCommands: r.commands,
		Stacks:           r.stackOverride,
		Commands:         r.commandOverride,
		Status:           status,
		Rejected:         rejected,
	}
}

// RedeemKit checks eligibility, lets hooks veto or change the redemption,
// grants the items, runs the commands and records the redemption time.
// Exactly one of the post or failed events is dispatched.
func (s *service) RedeemKit(ctx context.Context, input *RedeemKitInput) (*models.RedeemResult, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Kit == nil {
		return nil, ErrNilKit
	}

	if input.Player == nil {
		return nil, ErrNilPlayer
	}

	if input.Player.Inventory == nil {
		return nil, ErrNilInventory
	}

	mustGetAll := s.mustGetAll
	if input.MustGetAll != nil {
		mustGetAll = *input.MustGetAll
	}

	// The catalog entry may change while we work; use our own copy
	kit := input.Kit.Clone()
	player := input.Player

	r := &redemption{
		id:       s.uuid.NewUUID(),
		kit:      kit,
		player:   player,
		stacks:   s.granter.Resolve(kit, player),
		commands: append([]string{}, kit.Commands...),
	}

	logger := s.logger.WithFields(logrus.Fields{
		"redemption_id": r.id,
		"player_id":     player.ID,
		"kit":           kit.Key(),
	})

	record, err := s.ledger.Get(ctx, player.ID)
	if err != nil {
		logger.WithError(err).Error("failed to read redemption record")
		s.events.FailedRedeem(ctx, r.event(models.RedeemStatusUnknown, nil))
		return &models.RedeemResult{
			Status:        models.RedeemStatusUnknown,
			RejectedItems: []*models.ItemStack{},
		}, nil
	}
	r.lastRedeemed = record.LastRedeemed(kit.Name)

	if input.CheckOneTime || input.CheckCooldown {
		failure := s.eligibility.Evaluate(ctx, kit, player.ID, r.lastRedeemed, input.CheckOneTime, input.CheckCooldown)
		if failure != nil {
			logger.WithField("status", failure.Status).Debug("kit not eligible")
			s.events.FailedRedeem(ctx, r.event(failure.Status, nil))
			return &models.RedeemResult{
				Status:             failure.Status,
				RejectedItems:      []*models.ItemStack{},
				NextCooldownExpiry: failure.NextCooldownExpiry,
			}, nil
		}
	}

	nextUse := s.eligibility.GetNextUseTime(ctx, kit, player.ID, r.lastRedeemed)

	pre := s.events.PreRedeem(ctx, &events.PreRedeemEvent{
		RedemptionID:     r.id,
		Kit:              kit,
		Player:           player,
		LastRedeemed:     r.lastRedeemed,
		OriginalStacks:   models.CloneStacks(r.stacks),
		OriginalCommands: append([]string(nil), r.commands...),
	})
	r.stackOverride = pre.Stacks
	r.commandOverride = pre.Commands

	if pre.Cancelled {
		logger.Debug("redemption cancelled by hook")
		s.events.FailedRedeem(ctx, r.event(models.RedeemStatusPreEventCancelled, nil))
		return &models.RedeemResult{
			Status:             models.RedeemStatusPreEventCancelled,
			RejectedItems:      []*models.ItemStack{},
			NextCooldownExpiry: nextUse,
			CancelMessage:      pre.CancelMessage,
		}, nil
	}

	stacks := r.stacks
	if r.stackOverride != nil {
		stacks = r.stackOverride
	}
	commands := r.commands
	if r.commandOverride != nil {
		commands = r.commandOverride
	}

	// A kit without items succeeds without touching the inventory
	insertedAny := true
	rejected := []*models.ItemStack{}
	if len(kit.Stacks) > 0 {
		outcome := s.granter.Apply(player.Inventory, stacks, mustGetAll, input.FirstJoin)
		if outcome.RolledBack {
			logger.WithField("rejected", len(outcome.Rejected)).Debug("no space for kit")
			s.events.FailedRedeem(ctx, r.event(models.RedeemStatusNoSpace, outcome.Rejected))
			return &models.RedeemResult{
				Status:             models.RedeemStatusNoSpace,
				RejectedItems:      outcome.Rejected,
				NextCooldownExpiry: nextUse,
			}, nil
		}
		insertedAny = outcome.InsertedAny
		rejected = outcome.Rejected
	}

	if !insertedAny {
		logger.Warn("no kit items could be granted")
		s.events.FailedRedeem(ctx, r.event(models.RedeemStatusUnknown, rejected))
		return &models.RedeemResult{
			Status:             models.RedeemStatusUnknown,
			RejectedItems:      rejected,
			NextCooldownExpiry: nextUse,
		}, nil
	}

	s.runCommands(ctx, logger, commands, player)

	now := s.clock.Now()
	if input.CheckCooldown {
		s.ledger.Set(ctx, player.ID, kit.Name, now)
	}

	status := models.RedeemStatusSuccess
	if len(rejected) > 0 {
		status = models.RedeemStatusPartialSuccess
	}

	s.events.PostRedeem(ctx, r.event(status, rejected))

	logger.WithField("status", status).Info("kit redeemed")

	return &models.RedeemResult{
		Status:             status,
		RejectedItems:      rejected,
		NextCooldownExpiry: s.eligibility.GetNextUseTime(ctx, kit, player.ID, &now),
	}, nil
}

// runCommands executes each command as the console. Failures are logged
// and do not stop later commands.
func (s *service) runCommands(ctx context.Context, logger logrus.FieldLogger, commands []string, player *models.Player) {
	for _, line := range commands {
		line = strings.ReplaceAll(line, models.PlayerPlaceholder, player.Name)
		if err := s.commands.Execute(ctx, command.ConsoleSource, line); err != nil {
			logger.WithError(err).WithField("command", line).Warn("kit command failed")
		}
	}
}

func (s *service) lastRedeemed(ctx context.Context, input *QueryInput) (*time.Time, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Kit == nil {
		return nil, ErrNilKit
	}

	if input.PlayerID == "" {
		return nil, ErrEmptyPlayerID
	}

	record, err := s.ledger.Get(ctx, input.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get redemptions: %w", err)
	}

	return record.LastRedeemed(input.Kit.Name), nil
}

// IsRedeemable reports whether the kit is off cooldown and, for one-time
// kits, never redeemed
func (s *service) IsRedeemable(ctx context.Context, input *QueryInput) (bool, error) {
	last, err := s.lastRedeemed(ctx, input)
	if err != nil {
		return false, err
	}

	if last == nil {
		return true, nil
	}

	if input.Kit.OneTime {
		return false, nil
	}

	return s.eligibility.GetNextUseTime(ctx, input.Kit, input.PlayerID, last) == nil, nil
}

// HasPreviouslyRedeemed reports whether a redemption is on record
func (s *service) HasPreviouslyRedeemed(ctx context.Context, input *QueryInput) (bool, error) {
	last, err := s.lastRedeemed(ctx, input)
	if err != nil {
		return false, err
	}

	return last != nil, nil
}

// GetCooldownExpiry returns when the cooldown ends, or nil if it is not running
func (s *service) GetCooldownExpiry(ctx context.Context, input *QueryInput) (*time.Time, error) {
	last, err := s.lastRedeemed(ctx, input)
	if err != nil {
		return nil, err
	}

	return s.eligibility.GetNextUseTime(ctx, input.Kit, input.PlayerID, last), nil
}

// ResetRedemption clears the recorded redemption so one-time and cooldown
// policies no longer apply
func (s *service) ResetRedemption(ctx context.Context, input *QueryInput) error {
	if input == nil {
		return ErrNilInput
	}

	if input.Kit == nil {
		return ErrNilKit
	}

	if input.PlayerID == "" {
		return ErrEmptyPlayerID
	}

	return s.ledger.Clear(ctx, input.PlayerID, input.Kit.Name)
}
