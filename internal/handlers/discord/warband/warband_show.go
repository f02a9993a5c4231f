package warband

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	domain "github.com/fiveleagues/warband-bot/internal/domain/warband"
	"github.com/fiveleagues/warband-bot/internal/rulebook"
	"github.com/fiveleagues/warband-bot/internal/services"
)

type ShowRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	WarbandID   string
}

type ShowHandler struct {
	services *services.Provider
}

func NewShowHandler(services *services.Provider) *ShowHandler {
	return &ShowHandler{
		services: services,
	}
}

func (h *ShowHandler) Handle(req *ShowRequest) error {
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

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("⚔️ %s", wb.Name),
		Color: 0x3498db,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Warband ID: %s", wb.ID),
		},
	}

	heroLines := make([]string, 0, len(wb.Heroes))
	for _, hero := range wb.Heroes {
		heroLines = append(heroLines, characterLine(hero))
	}
	heroValue := "None yet"
	if len(heroLines) > 0 {
		heroValue = strings.Join(heroLines, "\n")
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  fmt.Sprintf("🛡️ Heroes (%d/%d)", len(wb.Heroes), wb.MaxHeroes),
		Value: heroValue,
	})

	followerLines := make([]string, 0, len(wb.Followers))
	for _, follower := range wb.Followers {
		followerLines = append(followerLines, characterLine(follower))
	}
	followerValue := "None yet"
	if len(followerLines) > 0 {
		followerValue = strings.Join(followerLines, "\n")
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  fmt.Sprintf("🏹 Followers (%d)", len(wb.Followers)),
		Value: followerValue,
	})

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

// characterLine renders a one-line roster summary for a character
func characterLine(c *domain.Character) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s** (%s", c.Name, c.Origin)
	if c.CharacterType == domain.CharacterTypeHero {
		fmt.Fprintf(&sb, " %s", c.Background)
	}
	sb.WriteString(")")
	fmt.Fprintf(&sb, " — Agi %d, CS %d, Spd %d/%s, T %d",
		c.Stats.Agility, c.Stats.CombatSkill, c.Stats.SpeedBase, c.Stats.DashBonus, c.Stats.Toughness)
	if armor := c.ArmorScore(); armor > 0 {
		fmt.Fprintf(&sb, ", Armor %d", armor)
	}
	if len(c.Skills) > 0 {
		names := make([]string, 0, len(c.Skills))
		for _, s := range c.Skills {
			names = append(names, rulebook.SkillShortName(s))
		}
		fmt.Fprintf(&sb, " — %s", strings.Join(names, ", "))
	}
	return sb.String()
}
