package warband

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/fiveleagues/warband-bot/internal/domain/creation"
	domain "github.com/fiveleagues/warband-bot/internal/domain/warband"
	"github.com/fiveleagues/warband-bot/internal/rulebook"
)

const wizardColor = 0x9b59b6

// renderWizard builds the embed and components for the session's current step
func renderWizard(sess *creation.Session) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title: wizardTitle(sess),
		Color: wizardColor,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Step %s | Session %s", sess.CurrentStep(), sess.ID),
		},
	}

	var rows []discordgo.MessageComponent

	switch sess.CurrentStep() {
	case creation.StepName:
		embed.Description = "Name your recruit, or continue to use a default name."
		if sess.Name != "" {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "Name",
				Value: sess.Name,
			})
		}
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Set Name",
					Style:    discordgo.PrimaryButton,
					CustomID: fmt.Sprintf("wizard:name:%s", sess.ID),
				},
			},
		})

	case creation.StepOrigin:
		embed.Description = "Choose where your hero comes from."
		options := make([]discordgo.SelectMenuOption, 0, len(rulebook.Origins()))
		for _, origin := range rulebook.Origins() {
			options = append(options, discordgo.SelectMenuOption{
				Label:   string(origin),
				Value:   string(origin),
				Default: sess.Origin == origin,
			})
		}
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    fmt.Sprintf("wizard:origin:%s", sess.ID),
					Placeholder: "Select an origin",
					Options:     options,
				},
			},
		})

	case creation.StepBackground:
		embed.Description = fmt.Sprintf("Choose a background available to %s heroes.", sess.Origin)
		backgrounds := rulebook.BackgroundsForOrigin(sess.Origin)
		options := make([]discordgo.SelectMenuOption, 0, len(backgrounds))
		for _, bg := range backgrounds {
			options = append(options, discordgo.SelectMenuOption{
				Label:       bg.Name,
				Value:       bg.Name,
				Description: bg.Description,
				Default:     sess.Background == bg.Name,
			})
		}
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    fmt.Sprintf("wizard:background:%s", sess.ID),
					Placeholder: "Select a background",
					Options:     options,
				},
			},
		})

	case creation.StepCapabilities, creation.StepMentality, creation.StepPossessions, creation.StepTraining:
		renderRollStep(sess, embed, &rows)

	case creation.StepSkills:
		embed.Description = fmt.Sprintf("Roll d100 for each trained skill (%d/%d rolled).",
			len(sess.SkillRolls), sess.SkillsToRoll)
		if len(sess.SkillRolls) > 0 {
			lines := make([]string, 0, len(sess.SkillRolls))
			for _, sr := range sess.SkillRolls {
				lines = append(lines, fmt.Sprintf("`%3d` %s", sr.Roll, sr.Skill))
			}
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "Rolled Skills",
				Value: strings.Join(lines, "\n"),
			})
		}
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    fmt.Sprintf("Roll for Skill (%d/%d)", len(sess.SkillRolls), sess.SkillsToRoll),
					Style:    discordgo.PrimaryButton,
					CustomID: fmt.Sprintf("wizard:skill:%s", sess.ID),
					Disabled: len(sess.SkillRolls) >= sess.SkillsToRoll,
				},
			},
		})

	case creation.StepEquipment:
		renderEquipmentStep(sess, embed, &rows)

	case creation.StepSummary:
		renderSummary(sess, embed)
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    fmt.Sprintf("Create %s", typeLabel(sess.CharacterType)),
					Style:    discordgo.SuccessButton,
					CustomID: fmt.Sprintf("wizard:create:%s", sess.ID),
				},
			},
		})
	}

	rows = append(rows, navigationRow(sess))
	return embed, rows
}

func wizardTitle(sess *creation.Session) string {
	name := sess.Name
	if name == "" {
		name = "New " + typeLabel(sess.CharacterType)
	}
	return fmt.Sprintf("🪶 Creating %s", name)
}

func typeLabel(t domain.CharacterType) string {
	if t == domain.CharacterTypeFollower {
		return "Follower"
	}
	return "Hero"
}

func renderRollStep(sess *creation.Session, embed *discordgo.MessageEmbed, rows *[]discordgo.MessageComponent) {
	step := sess.CurrentStep()
	kind, _ := creation.TableKindFor(step)

	embed.Description = fmt.Sprintf("Roll d20 on the %s %s table.", sess.Background, kind)
	result, rolled := sess.Rolls[kind]
	if rolled {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Result",
			Value: fmt.Sprintf("`%2d` %s", result.Roll, result.Text),
		})
	}

	*rows = append(*rows, discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Roll d20",
				Style:    discordgo.PrimaryButton,
				CustomID: fmt.Sprintf("wizard:roll:%s:%s", sess.ID, step),
				Disabled: rolled,
			},
		},
	})
}

func renderEquipmentStep(sess *creation.Session, embed *discordgo.MessageEmbed, rows *[]discordgo.MessageComponent) {
	if sess.CharacterType == domain.CharacterTypeFollower {
		embed.Description = "Pick the follower's gear: one weapon and one piece of armor."
	} else {
		embed.Description = "Pick starting gear from the hero starter kit: up to two quality weapons, two basic weapons, one suit of body armor, a helmet and a shield."
	}

	if len(sess.Equipment) > 0 {
		names := make([]string, 0, len(sess.Equipment))
		for _, item := range sess.Equipment {
			names = append(names, item.Name)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Selected",
			Value: strings.Join(names, ", "),
		})
	}

	catalog := rulebook.SelectableEquipment(sess.CharacterType)
	options := make([]discordgo.SelectMenuOption, 0, len(catalog))
	for _, item := range catalog {
		label := item.Name
		if sess.HasEquipment(item.Name) {
			label = "✓ " + label
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       label,
			Value:       item.Name,
			Description: string(item.Type),
		})
	}

	*rows = append(*rows, discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    fmt.Sprintf("wizard:equip:%s", sess.ID),
				Placeholder: "Toggle an item",
				Options:     options,
			},
		},
	})
}

func renderSummary(sess *creation.Session, embed *discordgo.MessageEmbed) {
	embed.Description = "Review the recruit, then create to add them to the warband."

	if sess.CharacterType == domain.CharacterTypeHero {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Origin",
			Value:  string(sess.Origin),
			Inline: true,
		}, &discordgo.MessageEmbedField{
			Name:   "Background",
			Value:  sess.Background,
			Inline: true,
		})

		stats := domain.BaseStats()
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Stats",
			Value: fmt.Sprintf("Agility %d | Combat Skill %d | Speed %d/%s | Toughness %d | Casting %d | Will %d | Luck %d",
				stats.Agility+sess.StatDelta.Agility,
				stats.CombatSkill+sess.StatDelta.CombatSkill,
				stats.SpeedBase+sess.StatDelta.SpeedBase, stats.DashBonus,
				stats.Toughness+sess.StatDelta.Toughness,
				stats.Casting+sess.StatDelta.Casting,
				sess.Will, sess.Luck),
		})

		extras := make([]string, 0, 3)
		if sess.XP > 0 {
			extras = append(extras, fmt.Sprintf("XP %d", sess.XP))
		}
		if sess.Gold > 0 {
			extras = append(extras, fmt.Sprintf("Gold %d", sess.Gold))
		}
		if sess.GrantedItem != "" {
			extras = append(extras, "Granted: "+sess.GrantedItem)
		}
		if len(extras) > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "Bonuses",
				Value: strings.Join(extras, " | "),
			})
		}

		if len(sess.SkillRolls) > 0 {
			names := make([]string, 0, len(sess.SkillRolls))
			for _, sr := range sess.SkillRolls {
				names = append(names, rulebook.SkillShortName(sr.Skill))
			}
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "Skills",
				Value: strings.Join(names, ", "),
			})
		}
	}

	if len(sess.Equipment) > 0 {
		names := make([]string, 0, len(sess.Equipment))
		for _, item := range sess.Equipment {
			names = append(names, item.Name)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Equipment",
			Value: strings.Join(names, ", "),
		})
	}
}

// navigationRow is shared by every step: back, next, cancel
func navigationRow(sess *creation.Session) discordgo.MessageComponent {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Back",
				Style:    discordgo.SecondaryButton,
				CustomID: fmt.Sprintf("wizard:back:%s", sess.ID),
				Disabled: sess.CurrentStep() == sess.Steps()[0],
			},
			discordgo.Button{
				Label:    "Next",
				Style:    discordgo.PrimaryButton,
				CustomID: fmt.Sprintf("wizard:next:%s", sess.ID),
				Disabled: !sess.CanAdvance(),
			},
			discordgo.Button{
				Label:    "Cancel",
				Style:    discordgo.DangerButton,
				CustomID: fmt.Sprintf("wizard:cancel:%s", sess.ID),
			},
		},
	}
}
