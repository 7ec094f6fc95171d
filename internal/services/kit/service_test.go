package kit

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/kits/internal/common/clock"
	"github.com/KirkDiggler/kits/internal/common/uuid"
	"github.com/KirkDiggler/kits/internal/models"
	redemptionRepo "github.com/KirkDiggler/kits/internal/repositories/redemption"
	redemptionMocks "github.com/KirkDiggler/kits/internal/repositories/redemption/mocks"
	"github.com/KirkDiggler/kits/internal/services/command"
	commandMocks "github.com/KirkDiggler/kits/internal/services/command/mocks"
	"github.com/KirkDiggler/kits/internal/services/eligibility"
	"github.com/KirkDiggler/kits/internal/services/events"
	"github.com/KirkDiggler/kits/internal/services/grant"
	"github.com/KirkDiggler/kits/internal/services/ledger"
	ledgerMocks "github.com/KirkDiggler/kits/internal/services/ledger/mocks"
	"github.com/KirkDiggler/kits/internal/services/permission"
	permissionMocks "github.com/KirkDiggler/kits/internal/services/permission/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type KitServiceTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockRedemptionRepo *redemptionMocks.MockRepository
	mockPerms          *permissionMocks.MockChecker
	mockCommands       *commandMocks.MockExecutor
	clock              *clock.ManualClock
	ledger             ledger.Ledger
	pipeline           *events.Pipeline
	granter            *grant.Transaction
	checker            *eligibility.Checker
	kitService         Service
	ctx                context.Context

	// Test data
	t0      time.Time
	player  *models.Player
	starter *models.Kit

	// Events seen by the pipeline listeners
	posted []*events.RedeemEvent
	failed []*events.RedeemEvent
}

func (s *KitServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRedemptionRepo = redemptionMocks.NewMockRepository(s.mockCtrl)
	s.mockPerms = permissionMocks.NewMockChecker(s.mockCtrl)
	s.mockCommands = commandMocks.NewMockExecutor(s.mockCtrl)
	s.ctx = context.Background()

	s.t0 = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.clock = clock.NewManual(s.t0)

	logger, _ := test.NewNullLogger()

	l, err := ledger.New(&ledger.Config{Repository: s.mockRedemptionRepo, Logger: logger})
	s.Require().NoError(err)
	s.ledger = l

	s.checker, err = eligibility.New(&eligibility.Config{Permissions: s.mockPerms, Clock: s.clock})
	s.Require().NoError(err)

	s.granter = grant.New(&grant.Config{ProcessTokens: true, Logger: logger})

	s.posted = nil
	s.failed = nil
	s.pipeline = events.New(&events.Config{Logger: logger})
	s.pipeline.OnPostRedeem(func(_ context.Context, e *events.RedeemEvent) { s.posted = append(s.posted, e) })
	s.pipeline.OnFailedRedeem(func(_ context.Context, e *events.RedeemEvent) { s.failed = append(s.failed, e) })

	s.kitService = s.newService(s.ledger)

	s.player = &models.Player{
		ID:        "p1",
		Name:      "steve",
		Inventory: models.NewInventory(models.DefaultInventorySize),
	}

	cooldown := 60 * time.Second
	s.starter = &models.Kit{
		Name: "starter",
		Stacks: []*models.ItemStack{
			{Type: "stone_sword", Quantity: 1, MaxStack: 1, DisplayName: "{{player}}'s sword"},
			{Type: "bread", Quantity: 16},
		},
		Commands: []string{"say welcome {{player}}"},
		Cooldown: &cooldown,
	}
}

func (s *KitServiceTestSuite) TearDownTest() {
	s.ledger.Flush()
	s.mockCtrl.Finish()
}

func TestKitServiceSuite(t *testing.T) {
	suite.Run(t, new(KitServiceTestSuite))
}

func (s *KitServiceTestSuite) newService(l ledger.Ledger) Service {
	logger, _ := test.NewNullLogger()
	svc, err := New(&Config{
		Ledger:      l,
		Eligibility: s.checker,
		Granter:     s.granter,
		Events:      s.pipeline,
		Commands:    s.mockCommands,
		Clock:       s.clock,
		UUID:        uuid.NewSequence("redemption"),
		Logger:      logger,
	})
	s.Require().NoError(err)
	return svc
}

// noHistory makes the player's stored record empty
func (s *KitServiceTestSuite) noHistory() {
	s.mockRedemptionRepo.EXPECT().
		GetRedemptions(gomock.Any(), &redemptionRepo.GetRedemptionsInput{PlayerID: s.player.ID}).
		Return(&redemptionRepo.GetRedemptionsOutput{Record: models.RedemptionRecord{}}, nil)
}

// history makes the player's stored record hold one redemption
func (s *KitServiceTestSuite) history(kitName string, at time.Time) {
	s.mockRedemptionRepo.EXPECT().
		GetRedemptions(gomock.Any(), &redemptionRepo.GetRedemptionsInput{PlayerID: s.player.ID}).
		Return(&redemptionRepo.GetRedemptionsOutput{Record: models.RedemptionRecord{kitName: at}}, nil)
}

func (s *KitServiceTestSuite) allowWrites() {
	s.mockRedemptionRepo.EXPECT().SetRedemptions(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (s *KitServiceTestSuite) noExemptions() {
	s.mockPerms.EXPECT().HasPermission(gomock.Any(), s.player.ID, permission.KitExemptOneTime).Return(false).AnyTimes()
	s.mockPerms.EXPECT().HasPermission(gomock.Any(), s.player.ID, permission.KitExemptCooldown).Return(false).AnyTimes()
}

func (s *KitServiceTestSuite) expectCommand(line string) *gomock.Call {
	return s.mockCommands.EXPECT().Execute(gomock.Any(), command.ConsoleSource, line).Return(nil)
}

func (s *KitServiceTestSuite) redeem(kit *models.Kit, mustGetAll bool) *models.RedeemResult {
	result, err := s.kitService.RedeemKit(s.ctx, &RedeemKitInput{
		Kit:           kit,
		Player:        s.player,
		CheckOneTime:  true,
		CheckCooldown: true,
		MustGetAll:    &mustGetAll,
	})
	s.Require().NoError(err)
	s.Require().NotNil(result)
	return result
}

func (s *KitServiceTestSuite) lastRedeemed(kitName string) *time.Time {
	record, err := s.ledger.Get(s.ctx, s.player.ID)
	s.Require().NoError(err)
	return record.LastRedeemed(kitName)
}

// distinctKit returns a kit of n items that can never share a slot
func distinctKit(name string, n int) *models.Kit {
	kit := models.NewKit(name)
	for i := 0; i < n; i++ {
		kit.Stacks = append(kit.Stacks, &models.ItemStack{
			Type:     models.ItemType(fmt.Sprintf("item_%d", i)),
			Quantity: 1,
			MaxStack: 1,
		})
	}
	return kit
}

func (s *KitServiceTestSuite) assertOneEvent() {
	s.Equal(1, len(s.posted)+len(s.failed), "exactly one of post or failed must fire")
}

func (s *KitServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilLedger)

	_, err = New(&Config{Ledger: s.ledger, Eligibility: s.checker, Granter: s.granter, Events: s.pipeline, Commands: s.mockCommands})
	s.ErrorIs(err, ErrNilClock)
}

func (s *KitServiceTestSuite) TestRedeemKitValidatesInput() {
	_, err := s.kitService.RedeemKit(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.kitService.RedeemKit(s.ctx, &RedeemKitInput{Player: s.player})
	s.ErrorIs(err, ErrNilKit)

	_, err = s.kitService.RedeemKit(s.ctx, &RedeemKitInput{Kit: s.starter})
	s.ErrorIs(err, ErrNilPlayer)

	_, err = s.kitService.RedeemKit(s.ctx, &RedeemKitInput{Kit: s.starter, Player: &models.Player{ID: "p2"}})
	s.ErrorIs(err, ErrNilInventory)

	s.Empty(s.posted)
	s.Empty(s.failed)
}

func (s *KitServiceTestSuite) TestStarterScenario() {
	s.noHistory()
	s.allowWrites()
	s.noExemptions()
	s.expectCommand("say welcome steve").Times(2)

	// t=0
	result := s.redeem(s.starter, false)
	s.Equal(models.RedeemStatusSuccess, result.Status)
	s.Empty(result.RejectedItems)
	s.Require().NotNil(result.NextCooldownExpiry)
	s.Equal(s.t0.Add(60*time.Second), *result.NextCooldownExpiry)
	s.Equal(1, s.player.Inventory.Count("stone_sword"))
	s.Equal(16, s.player.Inventory.Count("bread"))
	s.Equal("steve's sword", s.player.Inventory.Slots[0].DisplayName)
	s.Require().NotNil(s.lastRedeemed("starter"))
	s.Equal(s.t0, *s.lastRedeemed("starter"))

	// t=30
	s.clock.Advance(30 * time.Second)
	result = s.redeem(s.starter, false)
	s.Equal(models.RedeemStatusCooldownNotExpired, result.Status)
	s.Require().NotNil(result.NextCooldownExpiry)
	s.Equal(s.t0.Add(60*time.Second), *result.NextCooldownExpiry)
	s.Equal(16, s.player.Inventory.Count("bread"))

	// t=61
	s.clock.Set(s.t0.Add(61 * time.Second))
	result = s.redeem(s.starter, false)
	s.Equal(models.RedeemStatusSuccess, result.Status)
	s.Equal(32, s.player.Inventory.Count("bread"))
	s.Equal(s.t0.Add(61*time.Second), *s.lastRedeemed("starter"))

	s.Len(s.posted, 2)
	s.Require().Len(s.failed, 1)
	s.Equal(models.RedeemStatusCooldownNotExpired, s.failed[0].Status)
}

func (s *KitServiceTestSuite) TestOneTimeKit() {
	s.noHistory()
	s.allowWrites()
	s.noExemptions()

	welcome := models.NewKit("welcome")
	welcome.OneTime = true
	welcome.Stacks = []*models.ItemStack{{Type: "map", Quantity: 1}}

	first := s.redeem(welcome, false)
	s.Equal(models.RedeemStatusSuccess, first.Status)
	s.Nil(first.NextCooldownExpiry)

	second := s.redeem(welcome, false)
	s.Equal(models.RedeemStatusAlreadyRedeemedOneTime, second.Status)
	s.Nil(second.NextCooldownExpiry)
	s.Empty(second.RejectedItems)
	s.Equal(1, s.player.Inventory.Count("map"))
}

func (s *KitServiceTestSuite) TestOneTimeKitWithExemption() {
	s.history("welcome", s.t0)
	s.allowWrites()
	s.mockPerms.EXPECT().HasPermission(gomock.Any(), s.player.ID, permission.KitExemptOneTime).Return(true)

	welcome := models.NewKit("welcome")
	welcome.OneTime = true
	welcome.Stacks = []*models.ItemStack{{Type: "map", Quantity: 1}}

	result := s.redeem(welcome, false)

	s.Equal(models.RedeemStatusSuccess, result.Status)
}

func (s *KitServiceTestSuite) TestCooldownExemption() {
	s.history("starter", s.t0)
	s.allowWrites()
	s.mockPerms.EXPECT().HasPermission(gomock.Any(), s.player.ID, permission.KitExemptCooldown).Return(true).AnyTimes()
	s.expectCommand("say welcome steve")

	result := s.redeem(s.starter, false)

	s.Equal(models.RedeemStatusSuccess, result.Status)
	s.Nil(result.NextCooldownExpiry)
}

func (s *KitServiceTestSuite) TestMustGetAllRollsBack() {
	s.noHistory()
	s.noExemptions()

	s.player.Inventory = models.NewInventory(3)
	s.player.Inventory.Set(0, &models.ItemStack{Type: "dirt", Quantity: 10})
	s.player.Inventory.Set(2, &models.ItemStack{Type: "item_0", Quantity: 1, MaxStack: 1})
	before := s.player.Inventory.Snapshot()

	result := s.redeem(distinctKit("big", 5), true)

	s.Equal(models.RedeemStatusNoSpace, result.Status)
	s.Len(result.RejectedItems, 4)
	if diff := cmp.Diff(before, s.player.Inventory.Snapshot()); diff != "" {
		s.Failf("inventory changed after rollback", "(-want +got):\n%s", diff)
	}
	s.Nil(s.lastRedeemed("big"))
	s.assertOneEvent()
	s.Require().Len(s.failed, 1)
	s.Equal(models.RedeemStatusNoSpace, s.failed[0].Status)
	s.Len(s.failed[0].Rejected, 4)
}

func (s *KitServiceTestSuite) TestMustGetAllFromConfig() {
	s.noHistory()
	s.noExemptions()

	logger, _ := test.NewNullLogger()
	svc, err := New(&Config{
		Ledger:      s.ledger,
		Eligibility: s.checker,
		Granter:     s.granter,
		Events:      s.pipeline,
		Commands:    s.mockCommands,
		Clock:       s.clock,
		UUID:        uuid.NewSequence("redemption"),
		Logger:      logger,
		MustGetAll:  true,
	})
	s.Require().NoError(err)
	s.player.Inventory = models.NewInventory(1)

	result, err := svc.RedeemKit(s.ctx, &RedeemKitInput{Kit: distinctKit("big", 2), Player: s.player, CheckCooldown: true})

	s.Require().NoError(err)
	s.Equal(models.RedeemStatusNoSpace, result.Status)
	s.Nil(s.player.Inventory.Slots[0])
}

func (s *KitServiceTestSuite) TestPartialSuccess() {
	s.noHistory()
	s.allowWrites()
	s.noExemptions()
	s.expectCommand("say partial")

	s.player.Inventory = models.NewInventory(3)
	kit := distinctKit("big", 5)
	kit.Commands = []string{"say partial"}

	result := s.redeem(kit, false)

	s.Equal(models.RedeemStatusPartialSuccess, result.Status)
	s.Len(result.RejectedItems, 2)
	s.Equal(s.t0, *s.lastRedeemed("big"))
	s.assertOneEvent()
	s.Require().Len(s.posted, 1)
	s.Equal(models.RedeemStatusPartialSuccess, s.posted[0].Status)
}

func (s *KitServiceTestSuite) TestFirstJoinIsNeverAllOrNothing() {
	s.noHistory()
	s.player.Inventory = models.NewInventory(1)
	mustGetAll := true

	result, err := s.kitService.RedeemKit(s.ctx, &RedeemKitInput{
		Kit:        distinctKit("welcome", 2),
		Player:     s.player,
		MustGetAll: &mustGetAll,
		FirstJoin:  true,
	})

	s.Require().NoError(err)
	s.Equal(models.RedeemStatusPartialSuccess, result.Status)
	s.Len(result.RejectedItems, 1)
	s.Nil(s.lastRedeemed("welcome"))
}

func (s *KitServiceTestSuite) TestVetoLeavesEverythingUnchanged() {
	s.noHistory()
	s.noExemptions()

	message := "kits are disabled during events"
	s.pipeline.OnPreRedeem(func(context.Context, *events.PreRedeemEvent) *events.PreRedeemDecision {
		return &events.PreRedeemDecision{Cancel: true, Message: &message}
	})
	before := s.player.Inventory.Snapshot()

	result := s.redeem(s.starter, false)

	s.Equal(models.RedeemStatusPreEventCancelled, result.Status)
	s.Require().NotNil(result.CancelMessage)
	s.Equal(message, *result.CancelMessage)
	s.Empty(result.RejectedItems)
	if diff := cmp.Diff(before, s.player.Inventory.Snapshot()); diff != "" {
		s.Failf("inventory changed after veto", "(-want +got):\n%s", diff)
	}
	s.Nil(s.lastRedeemed("starter"))
	s.assertOneEvent()
	s.Require().Len(s.failed, 1)
	s.Equal(models.RedeemStatusPreEventCancelled, s.failed[0].Status)
}

func (s *KitServiceTestSuite) TestHookOverridesItemsAndCommands() {
	s.noHistory()
	s.allowWrites()
	s.noExemptions()
	s.expectCommand("give steve diamond")

	var seen *events.PreRedeemEvent
	s.pipeline.OnPreRedeem(func(_ context.Context, e *events.PreRedeemEvent) *events.PreRedeemDecision {
		seen = e
		return &events.PreRedeemDecision{
			Stacks:   []*models.ItemStack{{Type: "diamond", Quantity: 2}},
			Commands: []string{"give {{player}} diamond"},
		}
	})

	result := s.redeem(s.starter, false)

	s.Equal(models.RedeemStatusSuccess, result.Status)
	s.Equal(2, s.player.Inventory.Count("diamond"))
	s.Equal(0, s.player.Inventory.Count("bread"))

	s.Require().NotNil(seen)
	s.Len(seen.OriginalStacks, 2)
	s.Equal("steve's sword", seen.OriginalStacks[0].DisplayName)

	s.Require().Len(s.posted, 1)
	s.Equal([]string{"give {{player}} diamond"}, s.posted[0].Commands)
	s.Equal([]string{"say welcome {{player}}"}, s.posted[0].OriginalCommands)
}

func (s *KitServiceTestSuite) TestKitIsSnapshotAtInvocation() {
	s.noHistory()
	s.allowWrites()
	s.noExemptions()
	s.expectCommand("say welcome steve")

	s.pipeline.OnPreRedeem(func(context.Context, *events.PreRedeemEvent) *events.PreRedeemDecision {
		// Someone edits the catalog entry mid redemption
		s.starter.Stacks[1].Quantity = 64
		return nil
	})

	result := s.redeem(s.starter, false)

	s.Equal(models.RedeemStatusSuccess, result.Status)
	s.Equal(16, s.player.Inventory.Count("bread"))
}

func (s *KitServiceTestSuite) TestHookEditingOriginalsDoesNotChangeGrant() {
	s.noHistory()
	s.allowWrites()
	s.noExemptions()
	s.expectCommand("say welcome steve")

	s.pipeline.OnPreRedeem(func(_ context.Context, e *events.PreRedeemEvent) *events.PreRedeemDecision {
		e.OriginalStacks[1].Quantity = 1
		e.OriginalCommands[0] = "say bye {{player}}"
		return nil
	})

	result := s.redeem(s.starter, false)

	s.Equal(models.RedeemStatusSuccess, result.Status)
	s.Equal(16, s.player.Inventory.Count("bread"))

	s.Require().Len(s.posted, 1)
	s.Equal(16, s.posted[0].OriginalStacks[1].Quantity)
	s.Equal([]string{"say welcome {{player}}"}, s.posted[0].OriginalCommands)
}

func (s *KitServiceTestSuite) TestKitWithoutItemsSucceeds() {
	s.noHistory()
	s.allowWrites()
	s.noExemptions()
	s.expectCommand("say hello steve")

	kit := models.NewKit("greeting")
	kit.Commands = []string{"say hello {{player}}"}

	result := s.redeem(kit, true)

	s.Equal(models.RedeemStatusSuccess, result.Status)
	s.Equal(s.t0, *s.lastRedeemed("greeting"))
	s.Len(s.posted, 1)
}

func (s *KitServiceTestSuite) TestNothingInsertedIsUnknown() {
	s.noHistory()
	s.noExemptions()

	s.player.Inventory = models.NewInventory(1)
	s.player.Inventory.Set(0, &models.ItemStack{Type: "dirt", Quantity: 64})

	result := s.redeem(s.starter, false)

	s.Equal(models.RedeemStatusUnknown, result.Status)
	s.Len(result.RejectedItems, 2)
	s.Nil(s.lastRedeemed("starter"))
	s.assertOneEvent()
	s.Require().Len(s.failed, 1)
	s.Equal(models.RedeemStatusUnknown, s.failed[0].Status)
}

func (s *KitServiceTestSuite) TestOnlyEmptyStacksIsUnknown() {
	s.noHistory()
	s.noExemptions()

	kit := models.NewKit("broken")
	kit.Stacks = []*models.ItemStack{{Type: models.ItemTypeNone, Quantity: 1}}

	result := s.redeem(kit, false)

	s.Equal(models.RedeemStatusUnknown, result.Status)
	s.Empty(result.RejectedItems)
}

func (s *KitServiceTestSuite) TestCommandFailureDoesNotStopRedemption() {
	s.noHistory()
	s.allowWrites()
	s.noExemptions()

	s.starter.Commands = []string{"first", "second"}
	gomock.InOrder(
		s.mockCommands.EXPECT().Execute(gomock.Any(), command.ConsoleSource, "first").Return(errors.New("unknown command")),
		s.expectCommand("second"),
	)

	result := s.redeem(s.starter, false)

	s.Equal(models.RedeemStatusSuccess, result.Status)
}

func (s *KitServiceTestSuite) TestNoLedgerWriteWithoutCooldownCheck() {
	s.noHistory()
	s.noExemptions()
	s.expectCommand("say welcome steve")

	result, err := s.kitService.RedeemKit(s.ctx, &RedeemKitInput{Kit: s.starter, Player: s.player})

	s.Require().NoError(err)
	s.Equal(models.RedeemStatusSuccess, result.Status)
	s.Nil(s.lastRedeemed("starter"))
}

func (s *KitServiceTestSuite) TestLedgerReadFailureIsUnknown() {
	mockLedger := ledgerMocks.NewMockLedger(s.mockCtrl)
	mockLedger.EXPECT().Get(gomock.Any(), s.player.ID).Return(nil, errors.New("redis down"))
	svc := s.newService(mockLedger)

	result, err := svc.RedeemKit(s.ctx, &RedeemKitInput{Kit: s.starter, Player: s.player, CheckCooldown: true})

	s.Require().NoError(err)
	s.Equal(models.RedeemStatusUnknown, result.Status)
	s.Equal(0, s.player.Inventory.Count("bread"))
	s.assertOneEvent()
	s.Len(s.failed, 1)
}

func (s *KitServiceTestSuite) TestIsRedeemable() {
	s.history("starter", s.t0)
	s.noExemptions()
	query := &QueryInput{Kit: s.starter, PlayerID: s.player.ID}

	s.clock.Advance(10 * time.Second)
	ok, err := s.kitService.IsRedeemable(s.ctx, query)
	s.Require().NoError(err)
	s.False(ok)

	s.clock.Advance(60 * time.Second)
	ok, err = s.kitService.IsRedeemable(s.ctx, query)
	s.Require().NoError(err)
	s.True(ok)

	oneTime := s.starter.Clone()
	oneTime.OneTime = true
	ok, err = s.kitService.IsRedeemable(s.ctx, &QueryInput{Kit: oneTime, PlayerID: s.player.ID})
	s.Require().NoError(err)
	s.False(ok)
}

func (s *KitServiceTestSuite) TestIsRedeemableNeverRedeemed() {
	s.noHistory()

	ok, err := s.kitService.IsRedeemable(s.ctx, &QueryInput{Kit: s.starter, PlayerID: s.player.ID})

	s.Require().NoError(err)
	s.True(ok)
}

func (s *KitServiceTestSuite) TestHasPreviouslyRedeemedAndExpiry() {
	s.history("starter", s.t0)
	s.noExemptions()
	query := &QueryInput{Kit: s.starter, PlayerID: s.player.ID}

	redeemed, err := s.kitService.HasPreviouslyRedeemed(s.ctx, query)
	s.Require().NoError(err)
	s.True(redeemed)

	expiry, err := s.kitService.GetCooldownExpiry(s.ctx, query)
	s.Require().NoError(err)
	s.Require().NotNil(expiry)
	s.Equal(s.t0.Add(time.Minute), *expiry)

	redeemed, err = s.kitService.HasPreviouslyRedeemed(s.ctx, &QueryInput{Kit: models.NewKit("other"), PlayerID: s.player.ID})
	s.Require().NoError(err)
	s.False(redeemed)
}

func (s *KitServiceTestSuite) TestQueriesValidateInput() {
	_, err := s.kitService.IsRedeemable(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.kitService.HasPreviouslyRedeemed(s.ctx, &QueryInput{PlayerID: "p1"})
	s.ErrorIs(err, ErrNilKit)

	_, err = s.kitService.GetCooldownExpiry(s.ctx, &QueryInput{Kit: s.starter})
	s.ErrorIs(err, ErrEmptyPlayerID)
}

func (s *KitServiceTestSuite) TestResetRedemption() {
	s.history("starter", s.t0)
	s.mockRedemptionRepo.EXPECT().
		ClearRedemption(gomock.Any(), &redemptionRepo.ClearRedemptionInput{PlayerID: s.player.ID, KitName: "starter"}).
		Return(nil)
	query := &QueryInput{Kit: s.starter, PlayerID: s.player.ID}

	redeemed, err := s.kitService.HasPreviouslyRedeemed(s.ctx, query)
	s.Require().NoError(err)
	s.True(redeemed)

	s.Require().NoError(s.kitService.ResetRedemption(s.ctx, query))

	redeemed, err = s.kitService.HasPreviouslyRedeemed(s.ctx, query)
	s.Require().NoError(err)
	s.False(redeemed)
}
