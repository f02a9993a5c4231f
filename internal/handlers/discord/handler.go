package discord

import (
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	domain "github.com/fiveleagues/warband-bot/internal/domain/warband"
	warbandHandler "github.com/fiveleagues/warband-bot/internal/handlers/discord/warband"
	"github.com/fiveleagues/warband-bot/internal/services"
)

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider

	warbandCreateHandler   *warbandHandler.CreateHandler
	warbandListHandler     *warbandHandler.ListHandler
	warbandShowHandler     *warbandHandler.ShowHandler
	warbandEditHandler     *warbandHandler.EditHandler
	warbandDeleteHandler   *warbandHandler.DeleteHandler
	warbandExportHandler   *warbandHandler.ExportHandler
	removeCharacterHandler *warbandHandler.RemoveCharacterHandler
	startWizardHandler     *warbandHandler.StartWizardHandler
	wizardComponentHandler *warbandHandler.WizardComponentHandler
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	return &Handler{
		ServiceProvider:        cfg.ServiceProvider,
		warbandCreateHandler:   warbandHandler.NewCreateHandler(cfg.ServiceProvider),
		warbandListHandler:     warbandHandler.NewListHandler(cfg.ServiceProvider),
		warbandShowHandler:     warbandHandler.NewShowHandler(cfg.ServiceProvider),
		warbandEditHandler:     warbandHandler.NewEditHandler(cfg.ServiceProvider),
		warbandDeleteHandler:   warbandHandler.NewDeleteHandler(cfg.ServiceProvider),
		warbandExportHandler:   warbandHandler.NewExportHandler(cfg.ServiceProvider),
		removeCharacterHandler: warbandHandler.NewRemoveCharacterHandler(cfg.ServiceProvider),
		startWizardHandler:     warbandHandler.NewStartWizardHandler(cfg.ServiceProvider),
		wizardComponentHandler: warbandHandler.NewWizardComponentHandler(cfg.ServiceProvider),
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "warband",
			Description: "Warband management commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "create",
					Description: "Found a new warband",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Warband name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "max-heroes",
							Description: "Hero capacity (default 10)",
							Required:    false,
						},
					},
				},
				{
					Name:        "list",
					Description: "List all warbands",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "show",
					Description: "Show a warband's roster",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Warband ID",
							Required:    true,
						},
					},
				},
				{
					Name:        "edit",
					Description: "Rename a warband or change its hero capacity",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Warband ID",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "New warband name",
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "max-heroes",
							Description: "New hero capacity",
							Required:    false,
						},
					},
				},
				{
					Name:        "delete",
					Description: "Disband a warband",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Warband ID",
							Required:    true,
						},
					},
				},
				{
					Name:        "export",
					Description: "Export a warband roster as CSV",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Warband ID",
							Required:    true,
						},
					},
				},
				{
					Name:        "remove",
					Description: "Dismiss a character from a warband",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Warband ID",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "character-id",
							Description: "Character ID",
							Required:    true,
						},
					},
				},
				{
					Name:        "hero",
					Description: "Recruit a new hero",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Warband ID",
							Required:    true,
						},
					},
				},
				{
					Name:        "follower",
					Description: "Recruit a new follower",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Warband ID",
							Required:    true,
						},
					},
				},
			},
		},
	}

	for _, cmd := range commands {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd); err != nil {
			return err
		}
	}

	return nil
}

// HandleInteraction routes Discord interactions to the appropriate handler
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(s, i)
	case discordgo.InteractionModalSubmit:
		h.handleModalSubmit(s, i)
	}
}

// handleCommand handles slash command interactions
func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if data.Name != "warband" {
		return
	}
	if len(data.Options) == 0 {
		return
	}

	sub := data.Options[0]
	switch sub.Name {
	case "create":
		req := &warbandHandler.CreateRequest{
			Session:     s,
			Interaction: i,
		}
		for _, opt := range sub.Options {
			switch opt.Name {
			case "name":
				req.Name = opt.StringValue()
			case "max-heroes":
				req.MaxHeroes = int(opt.IntValue())
			}
		}
		if err := h.warbandCreateHandler.Handle(req); err != nil {
			log.Printf("Error handling warband create: %v", err)
		}

	case "list":
		req := &warbandHandler.ListRequest{
			Session:     s,
			Interaction: i,
		}
		if err := h.warbandListHandler.Handle(req); err != nil {
			log.Printf("Error handling warband list: %v", err)
		}

	case "show":
		req := &warbandHandler.ShowRequest{
			Session:     s,
			Interaction: i,
			WarbandID:   subcommandString(sub, "id"),
		}
		if err := h.warbandShowHandler.Handle(req); err != nil {
			log.Printf("Error handling warband show: %v", err)
		}

	case "edit":
		req := &warbandHandler.EditRequest{
			Session:     s,
			Interaction: i,
		}
		for _, opt := range sub.Options {
			switch opt.Name {
			case "id":
				req.WarbandID = opt.StringValue()
			case "name":
				req.Name = opt.StringValue()
			case "max-heroes":
				req.MaxHeroes = int(opt.IntValue())
			}
		}
		if err := h.warbandEditHandler.Handle(req); err != nil {
			log.Printf("Error handling warband edit: %v", err)
		}

	case "delete":
		req := &warbandHandler.DeleteRequest{
			Session:     s,
			Interaction: i,
			WarbandID:   subcommandString(sub, "id"),
		}
		if err := h.warbandDeleteHandler.Handle(req); err != nil {
			log.Printf("Error handling warband delete: %v", err)
		}

	case "export":
		req := &warbandHandler.ExportRequest{
			Session:     s,
			Interaction: i,
			WarbandID:   subcommandString(sub, "id"),
		}
		if err := h.warbandExportHandler.Handle(req); err != nil {
			log.Printf("Error handling warband export: %v", err)
		}

	case "remove":
		req := &warbandHandler.RemoveCharacterRequest{
			Session:     s,
			Interaction: i,
			WarbandID:   subcommandString(sub, "id"),
			CharacterID: subcommandString(sub, "character-id"),
		}
		if err := h.removeCharacterHandler.Handle(req); err != nil {
			log.Printf("Error handling character removal: %v", err)
		}

	case "hero":
		req := &warbandHandler.StartWizardRequest{
			Session:       s,
			Interaction:   i,
			WarbandID:     subcommandString(sub, "id"),
			CharacterType: domain.CharacterTypeHero,
		}
		if err := h.startWizardHandler.Handle(req); err != nil {
			log.Printf("Error starting hero wizard: %v", err)
		}

	case "follower":
		req := &warbandHandler.StartWizardRequest{
			Session:       s,
			Interaction:   i,
			WarbandID:     subcommandString(sub, "id"),
			CharacterType: domain.CharacterTypeFollower,
		}
		if err := h.startWizardHandler.Handle(req); err != nil {
			log.Printf("Error starting follower wizard: %v", err)
		}
	}
}

// handleComponent handles message component interactions
func (h *Handler) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	switch {
	case strings.HasPrefix(customID, "wizard:"):
		if err := h.wizardComponentHandler.Handle(s, i); err != nil {
			log.Printf("Error handling wizard component %s: %v", customID, err)
		}

	case strings.HasPrefix(customID, "warband_manage:"):
		// warband_manage:<hero|follower>:<warbandID>
		parts := strings.Split(customID, ":")
		if len(parts) != 3 {
			log.Printf("Malformed warband_manage custom ID: %s", customID)
			return
		}
		characterType := domain.CharacterTypeHero
		if parts[1] == "follower" {
			characterType = domain.CharacterTypeFollower
		}
		req := &warbandHandler.StartWizardRequest{
			Session:       s,
			Interaction:   i,
			WarbandID:     parts[2],
			CharacterType: characterType,
		}
		if err := h.startWizardHandler.Handle(req); err != nil {
			log.Printf("Error starting wizard from button %s: %v", customID, err)
		}
	}
}

// handleModalSubmit handles modal submissions
func (h *Handler) handleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.ModalSubmitData().CustomID

	if strings.HasPrefix(customID, "wizard:namemodal:") {
		if err := h.wizardComponentHandler.HandleNameModal(s, i); err != nil {
			log.Printf("Error handling name modal %s: %v", customID, err)
		}
	}
}

func subcommandString(sub *discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range sub.Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}
