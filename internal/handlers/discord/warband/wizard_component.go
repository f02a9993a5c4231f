package warband

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/fiveleagues/warband-bot/internal/domain/creation"
	"github.com/fiveleagues/warband-bot/internal/rulebook"
	"github.com/fiveleagues/warband-bot/internal/services"
)

// WizardComponentHandler dispatches all "wizard:*" message components and the
// name modal. Custom IDs are "wizard:<action>:<sessionID>[:<arg>]".
type WizardComponentHandler struct {
	services *services.Provider
}

func NewWizardComponentHandler(services *services.Provider) *WizardComponentHandler {
	return &WizardComponentHandler{
		services: services,
	}
}

// Handle processes a wizard message component interaction
func (h *WizardComponentHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.MessageComponentData()
	parts := strings.Split(data.CustomID, ":")
	if len(parts) < 3 {
		return fmt.Errorf("malformed wizard custom ID: %s", data.CustomID)
	}
	action, sessionID := parts[1], parts[2]
	ctx := context.Background()

	sess, err := h.services.CreationService.GetSession(ctx, sessionID)
	if err != nil {
		return respondEphemeral(s, i, "This recruiting session has expired. Start a new one.")
	}
	if sess.OwnerID != interactionUserID(i) {
		return respondEphemeral(s, i, "Only the player who started this session can use it.")
	}

	switch action {
	case "name":
		return h.openNameModal(s, i, sess)

	case "origin":
		if len(data.Values) == 0 {
			return respondEphemeral(s, i, "Select an origin first.")
		}
		if _, err := h.services.CreationService.SelectOrigin(ctx, sessionID, rulebook.Origin(data.Values[0])); err != nil {
			return respondEphemeral(s, i, err.Error())
		}

	case "background":
		if len(data.Values) == 0 {
			return respondEphemeral(s, i, "Select a background first.")
		}
		if _, err := h.services.CreationService.SelectBackground(ctx, sessionID, data.Values[0]); err != nil {
			return respondEphemeral(s, i, err.Error())
		}

	case "roll":
		if len(parts) < 4 {
			return fmt.Errorf("roll custom ID missing step: %s", data.CustomID)
		}
		if _, _, err := h.services.CreationService.RollStep(ctx, sessionID, creation.Step(parts[3])); err != nil {
			return respondEphemeral(s, i, err.Error())
		}

	case "skill":
		if _, _, err := h.services.CreationService.RollSkill(ctx, sessionID); err != nil {
			return respondEphemeral(s, i, err.Error())
		}

	case "equip":
		if len(data.Values) == 0 {
			return respondEphemeral(s, i, "Pick an item to toggle.")
		}
		if _, err := h.services.CreationService.ToggleEquipment(ctx, sessionID, data.Values[0]); err != nil {
			return respondEphemeral(s, i, err.Error())
		}

	case "next":
		if _, err := h.services.CreationService.Advance(ctx, sessionID); err != nil {
			return respondEphemeral(s, i, err.Error())
		}

	case "back":
		if _, err := h.services.CreationService.Back(ctx, sessionID); err != nil {
			return respondEphemeral(s, i, err.Error())
		}

	case "cancel":
		if err := h.services.CreationService.Cancel(ctx, sessionID); err != nil {
			return respondEphemeral(s, i, err.Error())
		}
		return updateMessage(s, i, &discordgo.MessageEmbed{
			Title:       "Recruiting Cancelled",
			Description: "No character was created.",
			Color:       0x95a5a6,
		}, []discordgo.MessageComponent{})

	case "create":
		character, err := h.services.CreationService.Complete(ctx, sessionID)
		if err != nil {
			return respondEphemeral(s, i, err.Error())
		}
		embed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("🎉 %s joins the warband!", character.Name),
			Description: characterLine(character),
			Color:       0x2ecc71,
			Footer: &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("Character ID: %s", character.ID),
			},
		}
		return updateMessage(s, i, embed, []discordgo.MessageComponent{})

	default:
		return fmt.Errorf("unknown wizard action: %s", action)
	}

	sess, err = h.services.CreationService.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	embed, components := renderWizard(sess)
	return updateMessage(s, i, embed, components)
}

// HandleNameModal processes the name modal submission
func (h *WizardComponentHandler) HandleNameModal(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ModalSubmitData()
	parts := strings.Split(data.CustomID, ":")
	if len(parts) < 3 {
		return fmt.Errorf("malformed wizard modal ID: %s", data.CustomID)
	}
	sessionID := parts[2]

	name := ""
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionsRow.Components {
			if input, ok := comp.(*discordgo.TextInput); ok && input.CustomID == "character_name" {
				name = input.Value
			}
		}
	}

	sess, err := h.services.CreationService.SetName(context.Background(), sessionID, name)
	if err != nil {
		return respondEphemeral(s, i, err.Error())
	}

	embed, components := renderWizard(sess)
	return updateMessage(s, i, embed, components)
}

func (h *WizardComponentHandler) openNameModal(s *discordgo.Session, i *discordgo.InteractionCreate, sess *creation.Session) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: fmt.Sprintf("wizard:namemodal:%s", sess.ID),
			Title:    fmt.Sprintf("Name Your %s", typeLabel(sess.CharacterType)),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "character_name",
							Label:       "Character name",
							Style:       discordgo.TextInputShort,
							Placeholder: "Leave blank for a default name",
							Value:       sess.Name,
							Required:    false,
							MaxLength:   64,
						},
					},
				},
			},
		},
	})
}

func updateMessage(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "❌ " + message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
