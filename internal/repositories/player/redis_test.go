package player

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/kits/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetPlayer() {
	inventory := models.NewInventory(4)
	inventory.Set(1, &models.ItemStack{Type: "bread", Quantity: 3, Lore: []string{"fresh"}})

	player := &models.Player{
		ID:          "test-player-id",
		Name:        "tester",
		DisplayName: "Test Player",
		Inventory:   inventory,
		FirstSeen:   s.testNow,
	}

	err := s.repo.SavePlayer(context.Background(), &SavePlayerInput{
		Player: player,
	})
	s.Require().NoError(err)

	retrievedPlayer, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: "test-player-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrievedPlayer)

	s.Equal("tester", retrievedPlayer.Name)
	s.Equal("Test Player", retrievedPlayer.DisplayName)
	s.Equal(s.testNow.Unix(), retrievedPlayer.FirstSeen.Unix())

	// Empty slots survive the round trip
	s.Require().NotNil(retrievedPlayer.Inventory)
	s.Equal(4, retrievedPlayer.Inventory.Capacity())
	s.Nil(retrievedPlayer.Inventory.Slots[0])
	s.Equal(inventory.Slots[1], retrievedPlayer.Inventory.Slots[1])
}

func (s *RedisRepositoryTestSuite) TestGetNonExistentPlayer() {
	_, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: "non-existent-player",
	})
	s.Require().Error(err)
	s.Equal(ErrPlayerNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestMarkJoined() {
	first, err := s.repo.MarkJoined(context.Background(), &MarkJoinedInput{
		PlayerID: "test-player-id",
		JoinedAt: s.testNow,
	})
	s.Require().NoError(err)
	s.True(first.FirstJoin)

	second, err := s.repo.MarkJoined(context.Background(), &MarkJoinedInput{
		PlayerID: "test-player-id",
		JoinedAt: s.testNow.Add(time.Hour),
	})
	s.Require().NoError(err)
	s.False(second.FirstJoin)
}

func (s *RedisRepositoryTestSuite) TestSavePlayerInvalidInput() {
	s.Error(s.repo.SavePlayer(context.Background(), nil))
	s.Error(s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: &models.Player{}}))
}
