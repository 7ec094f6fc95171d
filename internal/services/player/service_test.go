package player

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/kits/internal/common/clock/mocks"
	"github.com/KirkDiggler/kits/internal/models"
	playerRepo "github.com/KirkDiggler/kits/internal/repositories/player"
	playerMocks "github.com/KirkDiggler/kits/internal/repositories/player/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PlayerServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockRepo      *playerMocks.MockRepository
	mockClock     *mocks.MockClock
	playerService Service
	ctx           context.Context
	testTime      time.Time
}

func (s *PlayerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{Repository: s.mockRepo, Clock: s.mockClock, InventorySize: 9})
	s.Require().NoError(err)
	s.playerService = svc
	s.ctx = context.Background()
}

func (s *PlayerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPlayerServiceSuite(t *testing.T) {
	suite.Run(t, new(PlayerServiceTestSuite))
}

func (s *PlayerServiceTestSuite) TestLoadOrCreateNewPlayer() {
	s.mockRepo.EXPECT().
		GetPlayer(s.ctx, &playerRepo.GetPlayerInput{PlayerID: "p1"}).
		Return(nil, playerRepo.ErrPlayerNotFound)

	p, err := s.playerService.LoadOrCreate(s.ctx, &LoadOrCreateInput{PlayerID: "p1", Name: "steve"})

	s.Require().NoError(err)
	s.Equal("p1", p.ID)
	s.Equal("steve", p.Name)
	s.Equal(s.testTime, p.FirstSeen)
	s.Equal(9, p.Inventory.Capacity())
}

func (s *PlayerServiceTestSuite) TestLoadOrCreateExistingPlayer() {
	stored := &models.Player{ID: "p1", Name: "old", Inventory: models.NewInventory(36)}
	stored.Inventory.Set(0, &models.ItemStack{Type: "bread", Quantity: 2})
	s.mockRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(stored, nil)

	p, err := s.playerService.LoadOrCreate(s.ctx, &LoadOrCreateInput{PlayerID: "p1", Name: "steve", DisplayName: "Steve"})

	s.Require().NoError(err)
	s.Equal("steve", p.Name)
	s.Equal("Steve", p.DisplayName)
	s.Equal(2, p.Inventory.Count("bread"))
}

func (s *PlayerServiceTestSuite) TestLoadOrCreateRepositoryError() {
	s.mockRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := s.playerService.LoadOrCreate(s.ctx, &LoadOrCreateInput{PlayerID: "p1"})

	s.Error(err)
}

func (s *PlayerServiceTestSuite) TestSave() {
	p := &models.Player{ID: "p1"}
	s.mockRepo.EXPECT().SavePlayer(s.ctx, &playerRepo.SavePlayerInput{Player: p}).Return(nil)

	s.NoError(s.playerService.Save(s.ctx, p))
	s.Error(s.playerService.Save(s.ctx, nil))
}
