package warband

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiveleagues/warband-bot/internal/domain/creation"
	domain "github.com/fiveleagues/warband-bot/internal/domain/warband"
	"github.com/fiveleagues/warband-bot/internal/rulebook"
)

func newHeroSession(t *testing.T) *creation.Session {
	t.Helper()
	sess := creation.NewSession("sess-1", "owner-1", "wb-1", domain.CharacterTypeHero)
	return sess
}

// walkToSummary drives a Townsfolk hero through every gate with fixed rolls
func walkToSummary(t *testing.T, sess *creation.Session) {
	t.Helper()
	sess.SetName("Aldric")
	require.NoError(t, sess.Advance())
	require.NoError(t, sess.SelectOrigin(rulebook.OriginHuman))
	require.NoError(t, sess.Advance())
	require.NoError(t, sess.SelectBackground(rulebook.BackgroundTownsfolk))
	require.NoError(t, sess.Advance())
	for _, step := range []creation.Step{
		creation.StepCapabilities,
		creation.StepMentality,
		creation.StepPossessions,
		creation.StepTraining,
	} {
		_, err := sess.ApplyRoll(step, 10)
		require.NoError(t, err)
		require.NoError(t, sess.Advance())
	}
	for len(sess.SkillRolls) < sess.SkillsToRoll {
		_, err := sess.RollSkill(15)
		require.NoError(t, err)
	}
	require.NoError(t, sess.Advance())
	require.NoError(t, sess.Advance())
	require.True(t, sess.AtSummary())
}

func TestRenderWizardComponentsCarrySessionID(t *testing.T) {
	sess := newHeroSession(t)

	for {
		_, components := renderWizard(sess)
		require.NotEmpty(t, components, "step %s should have at least the navigation row", sess.CurrentStep())

		for _, row := range components {
			actionRow, ok := row.(discordgo.ActionsRow)
			require.True(t, ok, "every top-level component should be an action row")
			for _, component := range actionRow.Components {
				switch c := component.(type) {
				case discordgo.Button:
					assert.Contains(t, c.CustomID, "wizard:",
						"button %q on step %s", c.Label, sess.CurrentStep())
					assert.Contains(t, c.CustomID, sess.ID,
						"button %q on step %s", c.Label, sess.CurrentStep())
				case discordgo.SelectMenu:
					assert.Contains(t, c.CustomID, "wizard:")
					assert.Contains(t, c.CustomID, sess.ID)
				}
			}
		}

		if sess.AtSummary() {
			break
		}
		// Satisfy the current gate the cheapest way and move on
		switch sess.CurrentStep() {
		case creation.StepOrigin:
			require.NoError(t, sess.SelectOrigin(rulebook.OriginHuman))
		case creation.StepBackground:
			require.NoError(t, sess.SelectBackground(rulebook.BackgroundTownsfolk))
		case creation.StepCapabilities, creation.StepMentality, creation.StepPossessions, creation.StepTraining:
			step := sess.CurrentStep()
			_, err := sess.ApplyRoll(step, 10)
			require.NoError(t, err)
		case creation.StepSkills:
			for len(sess.SkillRolls) < sess.SkillsToRoll {
				_, err := sess.RollSkill(15)
				require.NoError(t, err)
			}
		}
		require.NoError(t, sess.Advance())
	}
}

func TestRenderWizardNavigationGates(t *testing.T) {
	sess := newHeroSession(t)

	// Name step: Back disabled at the first step, Next enabled (name optional)
	nav := navButtons(t, sess)
	assert.True(t, nav["Back"].Disabled)
	assert.False(t, nav["Next"].Disabled)
	assert.False(t, nav["Cancel"].Disabled)

	require.NoError(t, sess.Advance())

	// Origin step: Next disabled until a selection is made
	nav = navButtons(t, sess)
	assert.False(t, nav["Back"].Disabled)
	assert.True(t, nav["Next"].Disabled)

	require.NoError(t, sess.SelectOrigin(rulebook.OriginHuman))
	nav = navButtons(t, sess)
	assert.False(t, nav["Next"].Disabled)
}

func TestRenderRollStepDisablesAfterRoll(t *testing.T) {
	sess := newHeroSession(t)
	require.NoError(t, sess.Advance())
	require.NoError(t, sess.SelectOrigin(rulebook.OriginHuman))
	require.NoError(t, sess.Advance())
	require.NoError(t, sess.SelectBackground(rulebook.BackgroundTownsfolk))
	require.NoError(t, sess.Advance())

	rollBtn, found := findButton(t, sess, "Roll d20")
	require.True(t, found)
	assert.False(t, rollBtn.Disabled)
	assert.Contains(t, rollBtn.CustomID, string(creation.StepCapabilities))

	_, err := sess.ApplyRoll(creation.StepCapabilities, 2)
	require.NoError(t, err)

	rollBtn, found = findButton(t, sess, "Roll d20")
	require.True(t, found)
	assert.True(t, rollBtn.Disabled)

	embed, _ := renderWizard(sess)
	require.NotEmpty(t, embed.Fields)
	assert.Contains(t, embed.Fields[len(embed.Fields)-1].Value, "Agility increase")
}

func TestRenderSummaryShowsCreateButton(t *testing.T) {
	sess := newHeroSession(t)
	walkToSummary(t, sess)

	embed, _ := renderWizard(sess)
	assert.Contains(t, embed.Title, "Aldric")

	createBtn, found := findButton(t, sess, "Create Hero")
	require.True(t, found)
	assert.Equal(t, "wizard:create:sess-1", createBtn.CustomID)
	assert.False(t, createBtn.Disabled)
}

func navButtons(t *testing.T, sess *creation.Session) map[string]discordgo.Button {
	t.Helper()
	_, components := renderWizard(sess)
	require.NotEmpty(t, components)

	nav, ok := components[len(components)-1].(discordgo.ActionsRow)
	require.True(t, ok)

	buttons := make(map[string]discordgo.Button)
	for _, component := range nav.Components {
		btn, isButton := component.(discordgo.Button)
		require.True(t, isButton)
		buttons[btn.Label] = btn
	}
	require.Len(t, buttons, 3)
	return buttons
}

func findButton(t *testing.T, sess *creation.Session, label string) (discordgo.Button, bool) {
	t.Helper()
	_, components := renderWizard(sess)
	for _, row := range components {
		actionRow, ok := row.(discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, component := range actionRow.Components {
			if btn, isButton := component.(discordgo.Button); isButton && btn.Label == label {
				return btn, true
			}
		}
	}
	return discordgo.Button{}, false
}
