package warband_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	domain "github.com/fiveleagues/warband-bot/internal/domain/warband"
	"github.com/fiveleagues/warband-bot/internal/errors"
	mockwarbands "github.com/fiveleagues/warband-bot/internal/repositories/warbands/mock"
	warbandsvc "github.com/fiveleagues/warband-bot/internal/services/warband"
	mockuuid "github.com/fiveleagues/warband-bot/internal/uuid/mocks"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mockwarbands.MockRepository
	mockUUID *mockuuid.MockGenerator
	service  warbandsvc.Service
	ctx      context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = mockwarbands.NewMockRepository(s.ctrl)
	s.mockUUID = mockuuid.NewMockGenerator(s.ctrl)
	s.service = warbandsvc.NewService(&warbandsvc.ServiceConfig{
		Repository:    s.mockRepo,
		UUIDGenerator: s.mockUUID,
	})
	s.ctx = context.Background()
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceTestSuite) TestCreateWarband() {
	s.mockUUID.EXPECT().New().Return("wb-1")
	s.mockRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)

	wb, err := s.service.CreateWarband(s.ctx, &warbandsvc.CreateWarbandInput{
		Name: "  The Gray Company  ",
	})
	s.Require().NoError(err)
	s.Equal("wb-1", wb.ID)
	s.Equal("The Gray Company", wb.Name)
	s.Equal(domain.DefaultMaxHeroes, wb.MaxHeroes)
	s.False(wb.CreatedAt.IsZero())
}

func (s *ServiceTestSuite) TestCreateWarbandRequiresName() {
	_, err := s.service.CreateWarband(s.ctx, &warbandsvc.CreateWarbandInput{Name: "   "})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestCreateWarbandCustomCapacity() {
	s.mockUUID.EXPECT().New().Return("wb-1")
	s.mockRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)

	wb, err := s.service.CreateWarband(s.ctx, &warbandsvc.CreateWarbandInput{
		Name:      "Ironhold Vanguard",
		MaxHeroes: 6,
	})
	s.Require().NoError(err)
	s.Equal(6, wb.MaxHeroes)
}

func (s *ServiceTestSuite) TestGetWarbandRequiresID() {
	_, err := s.service.GetWarband(s.ctx, "")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestUpdateWarbandCapacityBelowRoster() {
	stored := &domain.Warband{
		ID:        "wb-1",
		Name:      "The Gray Company",
		MaxHeroes: 10,
		Heroes: []*domain.Character{
			{ID: "char-1", CharacterType: domain.CharacterTypeHero},
			{ID: "char-2", CharacterType: domain.CharacterTypeHero},
		},
	}
	s.mockRepo.EXPECT().Get(s.ctx, "wb-1").Return(stored, nil)

	one := 1
	_, err := s.service.UpdateWarband(s.ctx, "wb-1", &warbandsvc.UpdateWarbandInput{MaxHeroes: &one})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestUpdateWarbandRename() {
	stored := &domain.Warband{ID: "wb-1", Name: "Old Name", MaxHeroes: 10}
	s.mockRepo.EXPECT().Get(s.ctx, "wb-1").Return(stored, nil)
	s.mockRepo.EXPECT().Update(s.ctx, gomock.Any()).Return(nil)

	name := "New Name"
	wb, err := s.service.UpdateWarband(s.ctx, "wb-1", &warbandsvc.UpdateWarbandInput{Name: &name})
	s.Require().NoError(err)
	s.Equal("New Name", wb.Name)
}

func (s *ServiceTestSuite) TestAddCharacter() {
	stored := &domain.Warband{ID: "wb-1", Name: "The Gray Company", MaxHeroes: 10}
	s.mockRepo.EXPECT().Get(s.ctx, "wb-1").Return(stored, nil)
	s.mockRepo.EXPECT().Update(s.ctx, gomock.Any()).Return(nil)

	hero := &domain.Character{ID: "char-1", Name: "Aldric", CharacterType: domain.CharacterTypeHero}
	wb, err := s.service.AddCharacter(s.ctx, "wb-1", hero)
	s.Require().NoError(err)
	s.Require().Len(wb.Heroes, 1)
	s.Equal("Aldric", wb.Heroes[0].Name)
}

func (s *ServiceTestSuite) TestAddHeroAtCapacity() {
	stored := &domain.Warband{
		ID:        "wb-1",
		Name:      "The Gray Company",
		MaxHeroes: 1,
		Heroes:    []*domain.Character{{ID: "char-1", CharacterType: domain.CharacterTypeHero}},
	}
	s.mockRepo.EXPECT().Get(s.ctx, "wb-1").Return(stored, nil)

	hero := &domain.Character{ID: "char-2", CharacterType: domain.CharacterTypeHero}
	_, err := s.service.AddCharacter(s.ctx, "wb-1", hero)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *ServiceTestSuite) TestAddFollowerIgnoresHeroCapacity() {
	stored := &domain.Warband{
		ID:        "wb-1",
		Name:      "The Gray Company",
		MaxHeroes: 1,
		Heroes:    []*domain.Character{{ID: "char-1", CharacterType: domain.CharacterTypeHero}},
	}
	s.mockRepo.EXPECT().Get(s.ctx, "wb-1").Return(stored, nil)
	s.mockRepo.EXPECT().Update(s.ctx, gomock.Any()).Return(nil)

	follower := &domain.Character{ID: "char-2", CharacterType: domain.CharacterTypeFollower}
	wb, err := s.service.AddCharacter(s.ctx, "wb-1", follower)
	s.Require().NoError(err)
	s.Len(wb.Followers, 1)
}

func (s *ServiceTestSuite) TestUpdateCharacterNotFound() {
	stored := &domain.Warband{ID: "wb-1", Name: "The Gray Company", MaxHeroes: 10}
	s.mockRepo.EXPECT().Get(s.ctx, "wb-1").Return(stored, nil)

	_, err := s.service.UpdateCharacter(s.ctx, "wb-1", &domain.Character{ID: "missing", CharacterType: domain.CharacterTypeHero})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *ServiceTestSuite) TestRemoveCharacter() {
	stored := &domain.Warband{
		ID:        "wb-1",
		Name:      "The Gray Company",
		MaxHeroes: 10,
		Followers: []*domain.Character{{ID: "char-1", CharacterType: domain.CharacterTypeFollower}},
	}
	s.mockRepo.EXPECT().Get(s.ctx, "wb-1").Return(stored, nil)
	s.mockRepo.EXPECT().Update(s.ctx, gomock.Any()).Return(nil)

	wb, err := s.service.RemoveCharacter(s.ctx, "wb-1", "char-1", domain.CharacterTypeFollower)
	s.Require().NoError(err)
	s.Empty(wb.Followers)
}

func (s *ServiceTestSuite) TestRemoveCharacterNotFound() {
	stored := &domain.Warband{ID: "wb-1", Name: "The Gray Company", MaxHeroes: 10}
	s.mockRepo.EXPECT().Get(s.ctx, "wb-1").Return(stored, nil)

	_, err := s.service.RemoveCharacter(s.ctx, "wb-1", "missing", domain.CharacterTypeHero)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
