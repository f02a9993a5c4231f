package warband

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/fiveleagues/warband-bot/internal/services"
)

type DeleteRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	WarbandID   string
}

type DeleteHandler struct {
	services *services.Provider
}

func NewDeleteHandler(services *services.Provider) *DeleteHandler {
	return &DeleteHandler{
		services: services,
	}
}

func (h *DeleteHandler) Handle(req *DeleteRequest) error {
	err := req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		return fmt.Errorf("failed to acknowledge interaction: %w", err)
	}

	wb, err := h.services.WarbandService.GetWarband(context.Background(), req.WarbandID)
	if err != nil {
		return respondError(req.Session, req.Interaction, fmt.Sprintf("Failed to find warband: %v", err))
	}

	if err := h.services.WarbandService.DeleteWarband(context.Background(), req.WarbandID); err != nil {
		return respondError(req.Session, req.Interaction, fmt.Sprintf("Failed to delete warband: %v", err))
	}

	content := fmt.Sprintf("🗑️ Warband **%s** has been disbanded.", wb.Name)
	_, err = req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	return err
}
