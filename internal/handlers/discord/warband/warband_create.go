// Package warband contains the Discord handlers for warband roster
// management and the character creation wizard.
package warband

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/fiveleagues/warband-bot/internal/services"
	warbandService "github.com/fiveleagues/warband-bot/internal/services/warband"
)

type CreateRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	Name        string
	MaxHeroes   int
}

type CreateHandler struct {
	services *services.Provider
}

func NewCreateHandler(services *services.Provider) *CreateHandler {
	return &CreateHandler{
		services: services,
	}
}

func (h *CreateHandler) Handle(req *CreateRequest) error {
	err := req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		return fmt.Errorf("failed to acknowledge interaction: %w", err)
	}

	if strings.TrimSpace(req.Name) == "" {
		return respondError(req.Session, req.Interaction, "Warband name is required!")
	}

	wb, err := h.services.WarbandService.CreateWarband(context.Background(), &warbandService.CreateWarbandInput{
		Name:      req.Name,
		MaxHeroes: req.MaxHeroes,
	})
	if err != nil {
		return respondError(req.Session, req.Interaction, fmt.Sprintf("Failed to create warband: %v", err))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "⚔️ Warband Created!",
		Description: fmt.Sprintf("**%s** is ready to muster.", wb.Name),
		Color:       0x2ecc71,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "📋 Details",
				Value:  fmt.Sprintf("**Hero capacity:** %d\n**Heroes:** 0\n**Followers:** 0", wb.MaxHeroes),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Warband ID: %s", wb.ID),
		},
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Recruit Hero",
					Style:    discordgo.PrimaryButton,
					CustomID: fmt.Sprintf("warband_manage:hero:%s", wb.ID),
				},
				discordgo.Button{
					Label:    "Recruit Follower",
					Style:    discordgo.SecondaryButton,
					CustomID: fmt.Sprintf("warband_manage:follower:%s", wb.ID),
				},
			},
		},
	}

	_, err = req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &components,
	})
	return err
}

// respondError edits a deferred interaction with an error message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	content := "❌ " + message
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	return err
}
