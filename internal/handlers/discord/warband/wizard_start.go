package warband

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	domain "github.com/fiveleagues/warband-bot/internal/domain/warband"
	"github.com/fiveleagues/warband-bot/internal/services"
	creationService "github.com/fiveleagues/warband-bot/internal/services/creation"
)

type StartWizardRequest struct {
	Session       *discordgo.Session
	Interaction   *discordgo.InteractionCreate
	WarbandID     string
	CharacterType domain.CharacterType
}

// StartWizardHandler begins a creation wizard session and shows its first step
type StartWizardHandler struct {
	services *services.Provider
}

func NewStartWizardHandler(services *services.Provider) *StartWizardHandler {
	return &StartWizardHandler{
		services: services,
	}
}

func (h *StartWizardHandler) Handle(req *StartWizardRequest) error {
	err := req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		return fmt.Errorf("failed to acknowledge interaction: %w", err)
	}

	sess, err := h.services.CreationService.StartSession(context.Background(), &creationService.StartSessionInput{
		OwnerID:       interactionUserID(req.Interaction),
		WarbandID:     req.WarbandID,
		CharacterType: req.CharacterType,
	})
	if err != nil {
		return respondError(req.Session, req.Interaction, fmt.Sprintf("Cannot start recruiting: %v", err))
	}

	embed, components := renderWizard(sess)
	_, err = req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &components,
	})
	return err
}

// interactionUserID returns the acting user's ID for both guild and DM
// interactions
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
