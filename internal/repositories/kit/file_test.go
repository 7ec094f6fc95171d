package kit

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/KirkDiggler/kits/internal/models"
	"github.com/stretchr/testify/suite"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	path string
	repo Repository
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "kits.hujson")

	repo, err := NewFile(&FileConfig{Path: s.path})
	s.Require().NoError(err)
	s.repo = repo
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) TestMissingFileIsEmpty() {
	output, err := s.repo.GetKits(context.Background(), &GetKitsInput{})
	s.Require().NoError(err)
	s.Empty(output.Kits)
}

func (s *FileRepositoryTestSuite) TestReadsHandEditedFile() {
	contents := `{
	// granted to every new player
	"Welcome": {
		"stacks": [
			{"type": "bread", "quantity": 8},
		],
		"cooldown": "24h",
		"firstJoin": true,
	},
}`
	s.Require().NoError(os.WriteFile(s.path, []byte(contents), 0o644))

	output, err := s.repo.GetKits(context.Background(), &GetKitsInput{})
	s.Require().NoError(err)
	s.Require().Contains(output.Kits, "welcome")

	k := output.Kits["welcome"]
	// Name falls back to the key when omitted
	s.Equal("Welcome", k.Name)
	s.True(k.FirstJoin)
	s.Require().NotNil(k.Cooldown)
	s.Equal(24*time.Hour, *k.Cooldown)
	s.Require().Len(k.Stacks, 1)
	s.Equal(models.ItemType("bread"), k.Stacks[0].Type)
	s.Equal(8, k.Stacks[0].Quantity)
}

func (s *FileRepositoryTestSuite) TestSaveDeleteRoundTrip() {
	ctx := context.Background()

	s.Require().NoError(s.repo.SaveKit(ctx, &SaveKitInput{Kit: starterKit()}))
	s.Require().NoError(s.repo.SaveKit(ctx, &SaveKitInput{Kit: models.NewKit("daily")}))

	output, err := s.repo.GetKits(ctx, &GetKitsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Kits, 2)
	s.Equal(starterKit(), output.Kits["starter"])

	deleted, err := s.repo.DeleteKit(ctx, &DeleteKitInput{Name: "DAILY"})
	s.Require().NoError(err)
	s.True(deleted.Deleted)

	output, err = s.repo.GetKits(ctx, &GetKitsInput{})
	s.Require().NoError(err)
	s.Len(output.Kits, 1)
}

func (s *FileRepositoryTestSuite) TestInvalidCooldown() {
	s.Require().NoError(os.WriteFile(s.path, []byte(`{"bad": {"cooldown": "soon"}}`), 0o644))

	_, err := s.repo.GetKits(context.Background(), &GetKitsInput{})
	s.ErrorContains(err, "invalid cooldown")
}
