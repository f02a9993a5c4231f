package rulebook

import (
	"regexp"
	"strconv"
	"strings"
)

// Table entries carry authored deltas, so normal play never parses text.
// The parse functions stay exported so the authored deltas can be checked
// against the display text, and so callers with table text from elsewhere
// can still interpret it. Text that matches nothing yields a zero Delta.

var (
	willRe = regexp.MustCompile(`\+(\d+)\s*will`)
	luckRe = regexp.MustCompile(`\+(\d+)\s*luck`)
	xpRe   = regexp.MustCompile(`\+(\d+)\s*xp`)
	goldRe = regexp.MustCompile(`(\d+)\s*gold\s*marks?`)
)

// ParseCapability interprets a capabilities table entry as stat increments.
// "All stats" raises agility, combat skill, speed and toughness but not
// casting.
func ParseCapability(text string) Delta {
	lower := strings.ToLower(text)

	if strings.Contains(lower, "all stats") {
		return Delta{Agility: 1, CombatSkill: 1, SpeedBase: 1, Toughness: 1}
	}

	var d Delta
	if strings.Contains(lower, "agility") {
		d.Agility = 1
	}
	if strings.Contains(lower, "combat skill") {
		d.CombatSkill = 1
	}
	if strings.Contains(lower, "speed") {
		d.SpeedBase = 1
	}
	if strings.Contains(lower, "toughness") {
		d.Toughness = 1
	}
	if strings.Contains(lower, "casting") {
		d.Casting = 1
	}
	return d
}

// ParseMentality interprets a mentality table entry as Will, Luck and XP
// bonuses. Each capture is optional and defaults to zero.
func ParseMentality(text string) Delta {
	lower := strings.ToLower(text)
	return Delta{
		Will: captureInt(willRe, lower),
		Luck: captureInt(luckRe, lower),
		XP:   captureInt(xpRe, lower),
	}
}

// ParseTraining interprets a training table entry as a skill-roll count and
// an optional XP bonus
func ParseTraining(text string) Delta {
	lower := strings.ToLower(text)

	var d Delta
	if strings.Contains(lower, "2 skills") {
		d.SkillRolls = 2
	} else if strings.Contains(lower, "skill") {
		d.SkillRolls = 1
	}
	d.XP = captureInt(xpRe, lower)
	return d
}

// ParsePossessions interprets a possessions table entry as a gold amount and
// at most one granted item. Item phrases are checked in a fixed priority
// order; "basic weapon" is deliberately checked before "fine basic weapon",
// matching the authored deltas (see the Townsfolk possessions table).
func ParsePossessions(text string) Delta {
	lower := strings.ToLower(text)

	var d Delta
	d.Gold = captureInt(goldRe, lower)

	switch {
	case strings.Contains(lower, "quality weapon"):
		d.Item = ItemQualityWeapon
	case strings.Contains(lower, "basic weapon"):
		d.Item = ItemBasicWeapon
	case strings.Contains(lower, "fine basic weapon"):
		d.Item = ItemFineBasicWeapon
	case strings.Contains(lower, "mystic item"):
		d.Item = ItemMystic
	case strings.Contains(lower, "valuable item"):
		d.Item = ItemValuable
	case strings.Contains(lower, "fine armor"):
		d.Item = ItemFineArmor
	case strings.Contains(lower, "item"):
		d.Item = ItemGeneric
	}
	return d
}

// ParseForTable applies the parser matching the given table kind
func ParseForTable(kind TableKind, text string) Delta {
	switch kind {
	case TableCapabilities:
		return ParseCapability(text)
	case TableMentality:
		return ParseMentality(text)
	case TablePossessions:
		return ParsePossessions(text)
	case TableTraining:
		return ParseTraining(text)
	}
	return Delta{}
}

func captureInt(re *regexp.Regexp, s string) int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

func nameContainsWeapon(name string) bool {
	return strings.Contains(strings.ToLower(name), "weapon")
}
