package warband

import (
	"bytes"
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/fiveleagues/warband-bot/internal/services"
	"github.com/fiveleagues/warband-bot/internal/services/export"
)

type ExportRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	WarbandID   string
}

type ExportHandler struct {
	services *services.Provider
}

func NewExportHandler(services *services.Provider) *ExportHandler {
	return &ExportHandler{
		services: services,
	}
}

func (h *ExportHandler) Handle(req *ExportRequest) error {
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

	data, err := export.RosterCSV(wb)
	if err != nil {
		return respondError(req.Session, req.Interaction, fmt.Sprintf("Failed to export roster: %v", err))
	}

	content := fmt.Sprintf("📄 Roster for **%s**", wb.Name)
	_, err = req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
		Content: &content,
		Files: []*discordgo.File{
			{
				Name:        export.Filename(wb.Name),
				ContentType: "text/csv",
				Reader:      bytes.NewReader(data),
			},
		},
	})
	return err
}
