package redemption

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

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 123456789, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestGetRedemptionsEmpty() {
	output, err := s.repo.GetRedemptions(context.Background(), &GetRedemptionsInput{
		PlayerID: "player-1",
	})
	s.Require().NoError(err)
	s.Empty(output.Record)
}

func (s *RedisRepositoryTestSuite) TestSetAndGetRedemptions() {
	err := s.repo.SetRedemptions(context.Background(), &SetRedemptionsInput{
		PlayerID: "player-1",
		Record: models.RedemptionRecord{
			"Starter": s.testNow,
		},
	})
	s.Require().NoError(err)

	output, err := s.repo.GetRedemptions(context.Background(), &GetRedemptionsInput{
		PlayerID: "player-1",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Record, 1)

	// Kit names are stored lowercased with full precision
	s.True(s.testNow.Equal(output.Record["starter"]))
}

func (s *RedisRepositoryTestSuite) TestSetRedemptionsMerges() {
	ctx := context.Background()

	s.Require().NoError(s.repo.SetRedemptions(ctx, &SetRedemptionsInput{
		PlayerID: "player-1",
		Record:   models.RedemptionRecord{"starter": s.testNow},
	}))
	s.Require().NoError(s.repo.SetRedemptions(ctx, &SetRedemptionsInput{
		PlayerID: "player-1",
		Record:   models.RedemptionRecord{"daily": s.testNow.Add(time.Hour)},
	}))

	output, err := s.repo.GetRedemptions(ctx, &GetRedemptionsInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Require().Len(output.Record, 2)
	s.True(s.testNow.Equal(output.Record["starter"]))
	s.True(s.testNow.Add(time.Hour).Equal(output.Record["daily"]))

	// Other players are unaffected
	other, err := s.repo.GetRedemptions(ctx, &GetRedemptionsInput{PlayerID: "player-2"})
	s.Require().NoError(err)
	s.Empty(other.Record)
}

func (s *RedisRepositoryTestSuite) TestClearRedemption() {
	ctx := context.Background()

	s.Require().NoError(s.repo.SetRedemptions(ctx, &SetRedemptionsInput{
		PlayerID: "player-1",
		Record: models.RedemptionRecord{
			"starter": s.testNow,
			"daily":   s.testNow,
		},
	}))

	s.Require().NoError(s.repo.ClearRedemption(ctx, &ClearRedemptionInput{
		PlayerID: "player-1",
		KitName:  "STARTER",
	}))

	output, err := s.repo.GetRedemptions(ctx, &GetRedemptionsInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Len(output.Record, 1)
	s.Contains(output.Record, "daily")
}

func (s *RedisRepositoryTestSuite) TestGetRedemptionsCorruptValue() {
	s.mr.HSet("kit_redemptions:player-1", "starter", "yesterday")

	_, err := s.repo.GetRedemptions(context.Background(), &GetRedemptionsInput{PlayerID: "player-1"})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestInvalidInput() {
	_, err := s.repo.GetRedemptions(context.Background(), &GetRedemptionsInput{})
	s.Error(err)

	s.Error(s.repo.SetRedemptions(context.Background(), nil))
	s.Error(s.repo.ClearRedemption(context.Background(), &ClearRedemptionInput{PlayerID: "player-1"}))
}
