package discord

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	creationDomain "github.com/fiveleagues/warband-bot/internal/domain/creation"
	domain "github.com/fiveleagues/warband-bot/internal/domain/warband"
	"github.com/fiveleagues/warband-bot/internal/services"
	creationsvc "github.com/fiveleagues/warband-bot/internal/services/creation"
	mockcreation "github.com/fiveleagues/warband-bot/internal/services/creation/mock"
	warbandsvc "github.com/fiveleagues/warband-bot/internal/services/warband"
	mockwarband "github.com/fiveleagues/warband-bot/internal/services/warband/mock"
)

// recordedRequest is one HTTP call the handler made against the Discord API
type recordedRequest struct {
	Method string
	Path   string
	Body   []byte
}

// apiRecorder stubs the Discord REST API: it captures every request and
// answers with an empty success so no network is touched
type apiRecorder struct {
	requests []recordedRequest
}

func (r *apiRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
	}
	r.requests = append(r.requests, recordedRequest{
		Method: req.Method,
		Path:   req.URL.Path,
		Body:   body,
	})

	resp := &http.Response{
		StatusCode: http.StatusNoContent,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader("")),
	}
	if req.Method == http.MethodPatch {
		resp.StatusCode = http.StatusOK
		resp.Header.Set("Content-Type", "application/json")
		resp.Body = io.NopCloser(strings.NewReader("{}"))
	}
	return resp, nil
}

// webhookEdit mirrors the discordgo.WebhookEdit fields the tests assert on;
// WebhookEdit itself cannot be unmarshaled because Components is a slice of
// the MessageComponent interface
type webhookEdit struct {
	Content *string                    `json:"content"`
	Embeds  *[]*discordgo.MessageEmbed `json:"embeds"`
}

// lastEdit decodes the most recent webhook message edit the handler sent
func (r *apiRecorder) lastEdit(t *testing.T) *webhookEdit {
	t.Helper()
	for i := len(r.requests) - 1; i >= 0; i-- {
		if r.requests[i].Method == http.MethodPatch {
			var edit webhookEdit
			if err := json.Unmarshal(r.requests[i].Body, &edit); err != nil {
				t.Fatalf("failed to decode webhook edit: %v", err)
			}
			return &edit
		}
	}
	t.Fatal("no webhook edit was sent")
	return nil
}

type HandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockWarband  *mockwarband.MockService
	mockCreation *mockcreation.MockService
	handler      *Handler
	session      *discordgo.Session
	recorder     *apiRecorder
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockWarband = mockwarband.NewMockService(s.ctrl)
	s.mockCreation = mockcreation.NewMockService(s.ctrl)
	s.handler = NewHandler(&HandlerConfig{
		ServiceProvider: &services.Provider{
			WarbandService:  s.mockWarband,
			CreationService: s.mockCreation,
		},
	})

	dg, err := discordgo.New("Bot test-token")
	s.Require().NoError(err)
	s.recorder = &apiRecorder{}
	dg.Client = &http.Client{Transport: s.recorder}
	s.session = dg
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// commandInteraction builds a /warband <sub> invocation
func (s *HandlerTestSuite) commandInteraction(sub string, options []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-1",
			AppID: "app-1",
			Token: "interaction-token",
			Type:  discordgo.InteractionApplicationCommand,
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "user-1", Username: "tester"},
			},
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "warband",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Name:    sub,
						Type:    discordgo.ApplicationCommandOptionSubCommand,
						Options: options,
					},
				},
			},
		},
	}
}

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func intOption(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}

func (s *HandlerTestSuite) TestEditUpdatesNameAndCapacity() {
	s.mockWarband.EXPECT().
		UpdateWarband(gomock.Any(), "warband-123", gomock.Any()).
		DoAndReturn(func(ctx context.Context, warbandID string, input *warbandsvc.UpdateWarbandInput) (*domain.Warband, error) {
			s.Require().NotNil(input.Name)
			s.Equal("The Grey Company", *input.Name)
			s.Require().NotNil(input.MaxHeroes)
			s.Equal(8, *input.MaxHeroes)
			return &domain.Warband{ID: warbandID, Name: *input.Name, MaxHeroes: *input.MaxHeroes}, nil
		})

	s.handler.HandleInteraction(s.session, s.commandInteraction("edit", []*discordgo.ApplicationCommandInteractionDataOption{
		stringOption("id", "warband-123"),
		stringOption("name", "The Grey Company"),
		intOption("max-heroes", 8),
	}))

	edit := s.recorder.lastEdit(s.T())
	s.Require().NotNil(edit.Content)
	s.Contains(*edit.Content, "The Grey Company")
	s.Contains(*edit.Content, "0/8 heroes")
}

func (s *HandlerTestSuite) TestEditWithNothingToChangeIsRefused() {
	s.handler.HandleInteraction(s.session, s.commandInteraction("edit", []*discordgo.ApplicationCommandInteractionDataOption{
		stringOption("id", "warband-123"),
	}))

	edit := s.recorder.lastEdit(s.T())
	s.Require().NotNil(edit.Content)
	s.Contains(*edit.Content, "❌")
	s.Contains(*edit.Content, "Nothing to change")
}

func (s *HandlerTestSuite) TestRemoveDismissesHero() {
	hero := &domain.Character{ID: "char-1", Name: "Aldric", CharacterType: domain.CharacterTypeHero}
	wb := &domain.Warband{
		ID:        "warband-123",
		Name:      "The Grey Company",
		MaxHeroes: 6,
		Heroes:    []*domain.Character{hero},
	}

	s.mockWarband.EXPECT().GetWarband(gomock.Any(), "warband-123").Return(wb, nil)
	s.mockWarband.EXPECT().
		RemoveCharacter(gomock.Any(), "warband-123", "char-1", domain.CharacterTypeHero).
		Return(&domain.Warband{ID: "warband-123", Name: "The Grey Company", MaxHeroes: 6}, nil)

	s.handler.HandleInteraction(s.session, s.commandInteraction("remove", []*discordgo.ApplicationCommandInteractionDataOption{
		stringOption("id", "warband-123"),
		stringOption("character-id", "char-1"),
	}))

	edit := s.recorder.lastEdit(s.T())
	s.Require().NotNil(edit.Content)
	s.Contains(*edit.Content, "Aldric")
	s.Contains(*edit.Content, "0/6 heroes")
}

func (s *HandlerTestSuite) TestRemoveUnknownCharacterReportsError() {
	wb := &domain.Warband{ID: "warband-123", Name: "The Grey Company", MaxHeroes: 6}
	s.mockWarband.EXPECT().GetWarband(gomock.Any(), "warband-123").Return(wb, nil)

	s.handler.HandleInteraction(s.session, s.commandInteraction("remove", []*discordgo.ApplicationCommandInteractionDataOption{
		stringOption("id", "warband-123"),
		stringOption("character-id", "nobody"),
	}))

	edit := s.recorder.lastEdit(s.T())
	s.Require().NotNil(edit.Content)
	s.Contains(*edit.Content, "❌")
	s.Contains(*edit.Content, "nobody")
}

func (s *HandlerTestSuite) TestHeroSubcommandStartsWizard() {
	sess := creationDomain.NewSession("sess-1", "user-1", "warband-123", domain.CharacterTypeHero)

	s.mockCreation.EXPECT().
		StartSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *creationsvc.StartSessionInput) (*creationDomain.Session, error) {
			s.Equal("user-1", input.OwnerID)
			s.Equal("warband-123", input.WarbandID)
			s.Equal(domain.CharacterTypeHero, input.CharacterType)
			return sess, nil
		})

	s.handler.HandleInteraction(s.session, s.commandInteraction("hero", []*discordgo.ApplicationCommandInteractionDataOption{
		stringOption("id", "warband-123"),
	}))

	edit := s.recorder.lastEdit(s.T())
	s.Require().NotNil(edit.Embeds)
	s.Require().Len(*edit.Embeds, 1)
	s.Contains((*edit.Embeds)[0].Title, "Creating")
}
