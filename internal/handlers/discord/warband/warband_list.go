package warband

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/fiveleagues/warband-bot/internal/services"
)

type ListRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
}

type ListHandler struct {
	services *services.Provider
}

func NewListHandler(services *services.Provider) *ListHandler {
	return &ListHandler{
		services: services,
	}
}

func (h *ListHandler) Handle(req *ListRequest) error {
	err := req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		return fmt.Errorf("failed to acknowledge interaction: %w", err)
	}

	warbandList, err := h.services.WarbandService.ListWarbands(context.Background())
	if err != nil {
		return respondError(req.Session, req.Interaction, fmt.Sprintf("Failed to list warbands: %v", err))
	}

	if len(warbandList) == 0 {
		content := "No warbands yet. Create one with `/warband create`."
		_, err = req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
			Content: &content,
		})
		return err
	}

	var sb strings.Builder
	for _, wb := range warbandList {
		fmt.Fprintf(&sb, "**%s** — %d/%d heroes, %d followers\n`%s`\n",
			wb.Name, len(wb.Heroes), wb.MaxHeroes, len(wb.Followers), wb.ID)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "⚔️ Warbands",
		Description: sb.String(),
		Color:       0x3498db,
	}

	_, err = req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	})
	return err
}
