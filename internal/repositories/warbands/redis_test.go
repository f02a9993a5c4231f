package warbands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/fiveleagues/warband-bot/internal/domain/warband"
	"github.com/fiveleagues/warband-bot/internal/errors"
	"github.com/fiveleagues/warband-bot/internal/repositories/warbands"
	"github.com/fiveleagues/warband-bot/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    warbands.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.repo = warbands.NewRedisRepository(&warbands.RedisRepoConfig{
		Client: client,
	})
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) testWarband(id string) *warband.Warband {
	return &warband.Warband{
		ID:        id,
		Name:      "The Gray Company",
		MaxHeroes: warband.DefaultMaxHeroes,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	wb := s.testWarband("wb-1")
	s.Require().NoError(s.repo.Create(s.ctx, wb))

	got, err := s.repo.Get(s.ctx, "wb-1")
	s.Require().NoError(err)
	s.Equal("The Gray Company", got.Name)
	s.Equal(warband.DefaultMaxHeroes, got.MaxHeroes)
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	wb := s.testWarband("wb-1")
	s.Require().NoError(s.repo.Create(s.ctx, wb))

	err := s.repo.Create(s.ctx, wb)
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	s.Error(s.repo.Create(s.ctx, nil))
	s.Error(s.repo.Create(s.ctx, &warband.Warband{}))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, "missing")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestList() {
	first := s.testWarband("wb-1")
	first.CreatedAt = time.Now().UTC().Add(-time.Hour)
	second := s.testWarband("wb-2")
	second.Name = "Ironhold Vanguard"

	s.Require().NoError(s.repo.Create(s.ctx, first))
	s.Require().NoError(s.repo.Create(s.ctx, second))

	list, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("wb-1", list[0].ID, "list should be ordered by creation time")
	s.Equal("wb-2", list[1].ID)
}

func (s *RedisRepositoryTestSuite) TestListEmpty() {
	list, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	wb := s.testWarband("wb-1")
	s.Require().NoError(s.repo.Create(s.ctx, wb))

	wb.Heroes = append(wb.Heroes, &warband.Character{
		ID:            "char-1",
		Name:          "Aldric",
		CharacterType: warband.CharacterTypeHero,
	})
	s.Require().NoError(s.repo.Update(s.ctx, wb))

	got, err := s.repo.Get(s.ctx, "wb-1")
	s.Require().NoError(err)
	s.Require().Len(got.Heroes, 1)
	s.Equal("Aldric", got.Heroes[0].Name)
}

func (s *RedisRepositoryTestSuite) TestUpdateNotFound() {
	err := s.repo.Update(s.ctx, s.testWarband("missing"))
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	wb := s.testWarband("wb-1")
	s.Require().NoError(s.repo.Create(s.ctx, wb))
	s.Require().NoError(s.repo.Delete(s.ctx, "wb-1"))

	_, err := s.repo.Get(s.ctx, "wb-1")
	s.True(errors.IsNotFound(err))

	list, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *RedisRepositoryTestSuite) TestDeleteNotFound() {
	err := s.repo.Delete(s.ctx, "missing")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
