// Package export renders finished warband rosters into downloadable
// formats. It consumes assembled characters only and never mutates them.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/fiveleagues/warband-bot/internal/domain/warband"
	"github.com/fiveleagues/warband-bot/internal/errors"
	"github.com/fiveleagues/warband-bot/internal/rulebook"
)

var csvHeader = []string{
	"Name",
	"Type",
	"Origin",
	"Background",
	"Agility",
	"Combat Skill",
	"Speed",
	"Toughness",
	"Will",
	"Luck",
	"XP",
	"Gold",
	"Skills",
	"Equipment",
}

// RosterCSV renders a warband roster as CSV. The output opens with a
// "Warband: <name>" line and a blank line before the header row; heroes
// come before followers.
func RosterCSV(wb *warband.Warband) ([]byte, error) {
	if wb == nil {
		return nil, errors.InvalidArgument("warband cannot be nil")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Warband: %s\n\n", wb.Name)

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, errors.Wrap(err, "failed to write CSV header")
	}
	for _, c := range wb.AllCharacters() {
		if err := w.Write(characterRow(c)); err != nil {
			return nil, errors.Wrap(err, "failed to write CSV row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to render CSV")
	}
	return buf.Bytes(), nil
}

func characterRow(c *warband.Character) []string {
	skills := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		skills = append(skills, rulebook.SkillShortName(s))
	}
	equipment := make([]string, 0, len(c.Equipment))
	for _, e := range c.Equipment {
		equipment = append(equipment, e.Name)
	}

	return []string{
		c.Name,
		string(c.CharacterType),
		c.Origin,
		c.Background,
		strconv.Itoa(c.Stats.Agility),
		strconv.Itoa(c.Stats.CombatSkill),
		fmt.Sprintf("%d/%s", c.Stats.SpeedBase, c.Stats.DashBonus),
		strconv.Itoa(c.Stats.Toughness),
		strconv.Itoa(c.Stats.Will),
		strconv.Itoa(c.Stats.Luck),
		strconv.Itoa(c.XP),
		strconv.Itoa(c.Gold),
		strings.Join(skills, "; "),
		strings.Join(equipment, "; "),
	}
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Filename returns the download filename for a warband's roster export
func Filename(warbandName string) string {
	return whitespaceRe.ReplaceAllString(warbandName, "_") + "_roster.csv"
}
