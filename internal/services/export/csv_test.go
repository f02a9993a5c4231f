package export_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiveleagues/warband-bot/internal/domain/warband"
	"github.com/fiveleagues/warband-bot/internal/services/export"
)

func testWarband() *warband.Warband {
	hero := &warband.Character{
		ID:            "char-1",
		Name:          "Aldric",
		Origin:        "Human",
		Background:    "Townsfolk",
		CharacterType: warband.CharacterTypeHero,
		Stats: warband.Stats{
			Agility:     2,
			SpeedBase:   4,
			DashBonus:   "+3",
			CombatSkill: 0,
			Toughness:   3,
		},
		Skills: []string{"Crafting – Repairs, manual labor, and related haggling."},
		Equipment: []warband.Equipment{
			{Name: "Dagger", Type: warband.EquipmentTypeMelee},
			{Name: "Quality weapon", Type: warband.EquipmentTypeMelee},
		},
		XP:   1,
		Gold: 2,
	}
	follower := &warband.Character{
		ID:            "char-2",
		Name:          "Unnamed Follower",
		Origin:        "Human",
		Background:    "Townsfolk",
		CharacterType: warband.CharacterTypeFollower,
		Stats:         warband.BaseStats(),
	}
	return &warband.Warband{
		ID:        "wb-1",
		Name:      "The Gray Company",
		MaxHeroes: 10,
		Heroes:    []*warband.Character{hero},
		Followers: []*warband.Character{follower},
	}
}

func TestRosterCSV(t *testing.T) {
	data, err := export.RosterCSV(testWarband())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 5)

	assert.Equal(t, "Warband: The Gray Company", lines[0])
	assert.Empty(t, lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "Name,Type,Origin,Background,Agility,Combat Skill,Speed,"))

	// hero row before follower row
	assert.Contains(t, lines[3], "Aldric")
	assert.Contains(t, lines[3], "hero")
	assert.Contains(t, lines[3], "4/+3")
	assert.Contains(t, lines[3], "Crafting")
	assert.NotContains(t, lines[3], "Repairs", "skills should be shortened to their name")
	assert.Contains(t, lines[3], "Dagger; Quality weapon")

	assert.Contains(t, lines[4], "Unnamed Follower")
	assert.Contains(t, lines[4], "follower")
}

func TestRosterCSVNil(t *testing.T) {
	_, err := export.RosterCSV(nil)
	require.Error(t, err)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "The_Gray_Company_roster.csv", export.Filename("The Gray Company"))
	assert.Equal(t, "Ironhold_roster.csv", export.Filename("Ironhold"))
}
