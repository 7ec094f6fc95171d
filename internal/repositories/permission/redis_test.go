package permission

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
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
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSetAndGetPermissions() {
	ctx := context.Background()

	s.Require().NoError(s.repo.SetPermission(ctx, &SetPermissionInput{PlayerID: "p1", Node: "Kits.Exempt", Value: true}))
	s.Require().NoError(s.repo.SetPermission(ctx, &SetPermissionInput{PlayerID: "p1", Node: "kits.exempt.onetime", Value: false}))

	output, err := s.repo.GetPermissions(ctx, &GetPermissionsInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.ElementsMatch([]string{"kits.exempt"}, output.Granted)
	s.ElementsMatch([]string{"kits.exempt.onetime"}, output.Denied)
}

func (s *RedisRepositoryTestSuite) TestSetPermissionFlipsValue() {
	ctx := context.Background()

	s.Require().NoError(s.repo.SetPermission(ctx, &SetPermissionInput{PlayerID: "p1", Node: "kits.kit.starter", Value: true}))
	s.Require().NoError(s.repo.SetPermission(ctx, &SetPermissionInput{PlayerID: "p1", Node: "kits.kit.starter", Value: false}))

	output, err := s.repo.GetPermissions(ctx, &GetPermissionsInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Empty(output.Granted)
	s.ElementsMatch([]string{"kits.kit.starter"}, output.Denied)
}

func (s *RedisRepositoryTestSuite) TestUnsetPermission() {
	ctx := context.Background()

	s.Require().NoError(s.repo.SetPermission(ctx, &SetPermissionInput{PlayerID: "p1", Node: "kits.kit.starter", Value: true}))
	s.Require().NoError(s.repo.UnsetPermission(ctx, &UnsetPermissionInput{PlayerID: "p1", Node: "KITS.KIT.STARTER"}))

	output, err := s.repo.GetPermissions(ctx, &GetPermissionsInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Empty(output.Granted)
	s.Empty(output.Denied)
}
