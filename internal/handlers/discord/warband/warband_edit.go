package warband

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/fiveleagues/warband-bot/internal/services"
	warbandService "github.com/fiveleagues/warband-bot/internal/services/warband"
)

type EditRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	WarbandID   string
	Name        string // Optional, blank means unchanged
	MaxHeroes   int    // Optional, zero means unchanged
}

// EditHandler renames a warband or changes its hero capacity
type EditHandler struct {
	services *services.Provider
}

func NewEditHandler(services *services.Provider) *EditHandler {
	return &EditHandler{
		services: services,
	}
}

func (h *EditHandler) Handle(req *EditRequest) error {
	err := req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		return fmt.Errorf("failed to acknowledge interaction: %w", err)
	}

	input := &warbandService.UpdateWarbandInput{}
	if name := strings.TrimSpace(req.Name); name != "" {
		input.Name = &name
	}
	if req.MaxHeroes > 0 {
		maxHeroes := req.MaxHeroes
		input.MaxHeroes = &maxHeroes
	}
	if input.Name == nil && input.MaxHeroes == nil {
		return respondError(req.Session, req.Interaction, "Nothing to change: give a new name, a new max-heroes value, or both.")
	}

	wb, err := h.services.WarbandService.UpdateWarband(context.Background(), req.WarbandID, input)
	if err != nil {
		return respondError(req.Session, req.Interaction, fmt.Sprintf("Failed to update warband: %v", err))
	}

	content := fmt.Sprintf("✏️ Warband **%s** updated: %d/%d heroes, %d followers.",
		wb.Name, len(wb.Heroes), wb.MaxHeroes, len(wb.Followers))
	_, err = req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	return err
}
