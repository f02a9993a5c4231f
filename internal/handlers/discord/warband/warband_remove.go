package warband

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	domain "github.com/fiveleagues/warband-bot/internal/domain/warband"
	"github.com/fiveleagues/warband-bot/internal/services"
)

type RemoveCharacterRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	WarbandID   string
	CharacterID string
}

// RemoveCharacterHandler dismisses a hero or follower from the roster
type RemoveCharacterHandler struct {
	services *services.Provider
}

func NewRemoveCharacterHandler(services *services.Provider) *RemoveCharacterHandler {
	return &RemoveCharacterHandler{
		services: services,
	}
}

func (h *RemoveCharacterHandler) Handle(req *RemoveCharacterRequest) error {
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

	// Character IDs are unique across both buckets, so search heroes first
	charType := domain.CharacterTypeHero
	character := wb.FindCharacter(req.CharacterID, charType)
	if character == nil {
		charType = domain.CharacterTypeFollower
		character = wb.FindCharacter(req.CharacterID, charType)
	}
	if character == nil {
		return respondError(req.Session, req.Interaction, fmt.Sprintf("No character with ID `%s` in **%s**.", req.CharacterID, wb.Name))
	}

	wb, err = h.services.WarbandService.RemoveCharacter(context.Background(), req.WarbandID, req.CharacterID, charType)
	if err != nil {
		return respondError(req.Session, req.Interaction, fmt.Sprintf("Failed to remove character: %v", err))
	}

	content := fmt.Sprintf("🪦 **%s** has left **%s**. Roster: %d/%d heroes, %d followers.",
		character.Name, wb.Name, len(wb.Heroes), wb.MaxHeroes, len(wb.Followers))
	_, err = req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	return err
}
