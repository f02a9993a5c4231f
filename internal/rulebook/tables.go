// Package rulebook holds the static game data for character creation:
// origins, backgrounds with their roll tables, the skill table, and the
// equipment catalogs. Table entries carry both the display text printed in
// the rulebook and a structured Delta describing the entry's mechanical
// effect, so the wizard never has to re-parse text at runtime.
package rulebook

// Delta is the structured effect of a single roll table entry.
// Only the fields relevant to the entry's table type are ever set.
type Delta struct {
	// Capability stat increments
	Agility     int `json:"agility,omitempty"`
	CombatSkill int `json:"combat_skill,omitempty"`
	SpeedBase   int `json:"speed_base,omitempty"`
	Toughness   int `json:"toughness,omitempty"`
	Casting     int `json:"casting,omitempty"`

	// Mentality bonuses; XP is also granted by training entries
	Will int `json:"will,omitempty"`
	Luck int `json:"luck,omitempty"`
	XP   int `json:"xp,omitempty"`

	// Possessions
	Gold int    `json:"gold,omitempty"`
	Item string `json:"item,omitempty"`

	// Training
	SkillRolls int `json:"skill_rolls,omitempty"`
}

// RollTableEntry maps a contiguous roll range to a result
type RollTableEntry struct {
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Text  string `json:"text"`
	Delta Delta  `json:"delta"`
}

// Contains reports whether the roll falls inside the entry's range
func (e RollTableEntry) Contains(roll int) bool {
	return roll >= e.Min && roll <= e.Max
}

// RollTable is an ordered, non-overlapping, gap-free set of entries.
// Background tables cover 1..20, the skill table covers 1..100.
type RollTable []RollTableEntry

// Resolve returns the entry containing the roll. Tables are constructed
// non-overlapping, so scan order only matters if that invariant is broken,
// in which case the first match wins.
func (t RollTable) Resolve(roll int) (RollTableEntry, bool) {
	for _, entry := range t {
		if entry.Contains(roll) {
			return entry, true
		}
	}
	return RollTableEntry{}, false
}
