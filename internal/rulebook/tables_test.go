package rulebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/fiveleagues/warband-bot/internal/rulebook"
)

func TestRollTableResolve(t *testing.T) {
	table := rulebook.RollTable{
		{Min: 1, Max: 10, Text: "low"},
		{Min: 11, Max: 20, Text: "high"},
	}

	entry, ok := table.Resolve(10)
	require.True(t, ok)
	assert.Equal(t, "low", entry.Text)

	entry, ok = table.Resolve(11)
	require.True(t, ok)
	assert.Equal(t, "high", entry.Text)

	_, ok = table.Resolve(21)
	assert.False(t, ok)

	_, ok = table.Resolve(0)
	assert.False(t, ok)
}

// Every background table must resolve any d20 roll to exactly one entry
func TestBackgroundTableCoverage(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		roll := rapid.IntRange(1, 20).Draw(rt, "roll")
		for _, bg := range rulebook.Backgrounds() {
			for _, kind := range rulebook.TableKinds() {
				matches := 0
				for _, entry := range bg.Table(kind) {
					if entry.Contains(roll) {
						matches++
					}
				}
				if matches != 1 {
					rt.Fatalf("%s %s: roll %d matched %d entries", bg.Name, kind, roll, matches)
				}
			}
		}
	})
}

func TestSkillTableCoverage(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		roll := rapid.IntRange(1, 100).Draw(rt, "roll")
		matches := 0
		for _, entry := range rulebook.SkillTable {
			if entry.Contains(roll) {
				matches++
			}
		}
		if matches != 1 {
			rt.Fatalf("roll %d matched %d skill entries", roll, matches)
		}
	})
}

func TestSkillForRoll(t *testing.T) {
	assert.Equal(t, "Crafting – Repairs, manual labor, and related haggling.", rulebook.SkillForRoll(15))
	assert.Equal(t, "Battlewise – Achieving battlefield objectives; Seizing the Initiative.", rulebook.SkillForRoll(1))
	assert.Equal(t, "Survival – Finding food and shelter in the wild.", rulebook.SkillForRoll(100))
	assert.Equal(t, "Unknown skill", rulebook.SkillForRoll(101))
}

func TestSkillShortName(t *testing.T) {
	assert.Equal(t, "Crafting", rulebook.SkillShortName("Crafting – Repairs, manual labor, and related haggling."))
	assert.Equal(t, "Unknown skill", rulebook.SkillShortName("Unknown skill"))
}

func TestBackgroundsForOrigin(t *testing.T) {
	human := rulebook.BackgroundsForOrigin(rulebook.OriginHuman)
	assert.Len(t, human, 5)

	// Non-human origins only qualify for backgrounds open to all
	feral := rulebook.BackgroundsForOrigin(rulebook.OriginFeral)
	require.Len(t, feral, 1)
	assert.Equal(t, rulebook.BackgroundMystic, feral[0].Name)
}

func TestBackgroundByName(t *testing.T) {
	bg := rulebook.BackgroundByName(rulebook.BackgroundTownsfolk)
	require.NotNil(t, bg)
	assert.Equal(t, rulebook.BackgroundTownsfolk, bg.Name)

	assert.Nil(t, rulebook.BackgroundByName("Pirate"))
}
