package rulebook

import "strings"

// SkillTable is the d100 skill table. Entries cover 1..100 with no gaps.
var SkillTable = RollTable{
	{Min: 1, Max: 10, Text: "Battlewise – Achieving battlefield objectives; Seizing the Initiative."},
	{Min: 11, Max: 20, Text: "Crafting – Repairs, manual labor, and related haggling."},
	{Min: 21, Max: 30, Text: "Devotion – Obtaining blessings; enacting rituals; resisting hostile spells."},
	{Min: 31, Max: 40, Text: "Expertise – Dexterity and discretion while avoiding hazards."},
	{Min: 41, Max: 50, Text: "Endurance – Enduring hardship and fatigue."},
	{Min: 51, Max: 60, Text: "Intuition – Reading others; knowing when something is off."},
	{Min: 61, Max: 70, Text: "Leadership – Rallying the group; giving orders."},
	{Min: 71, Max: 80, Text: "Perception – Seeing hidden or subtle things."},
	{Min: 81, Max: 90, Text: "Stealth – Moving silently and unseen."},
	{Min: 91, Max: 100, Text: "Survival – Finding food and shelter in the wild."},
}

// SkillForRoll resolves a d100 roll to its skill entry text
func SkillForRoll(roll int) string {
	entry, ok := SkillTable.Resolve(roll)
	if !ok {
		return "Unknown skill"
	}
	return entry.Text
}

// SkillShortName returns the skill name without its description,
// e.g. "Crafting" from "Crafting – Repairs, manual labor, ..."
func SkillShortName(skill string) string {
	name, _, found := strings.Cut(skill, "–")
	if !found {
		return strings.TrimSpace(skill)
	}
	return strings.TrimSpace(name)
}
